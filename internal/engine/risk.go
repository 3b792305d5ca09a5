package engine

import (
	"github.com/hotspot-microservice/internal/domain"
)

// Score вычисляет risk score кластера и его дискретный уровень.
// Композиция мультипликативная: полностью tracked кластер не может стать
// рискованным за счёт одной плотности - изоляция гейтирует, а не взвешивает.
//
//	riskScore = untrackedRatio * densityFactor * isolationFactor
//
// Для score ниже порога LOW уровень пуст и третий результат false - такой
// кластер хотспотом не считается. Скоринг пустого кластера - ошибка
// программирования, Score на нём паникует.
func (e *Engine) Score(c domain.Cluster) (float64, domain.RiskLevel, bool) {
	if c.VesselCount() == 0 {
		panic("engine: scoring a cluster with zero members")
	}

	isolation := e.isolationFactor(c)
	if isolation == 0 {
		return 0, "", false
	}

	score := clamp01(c.UntrackedRatio() * e.densityFactor(c.VesselCount()) * isolation)

	level, reportable := domain.RiskLevelForScore(score)
	return score, level, reportable
}

// densityFactor - насыщающаяся функция количества судов: больше судов в одном
// кластере - выше фактор, с убывающей отдачей
func (e *Engine) densityFactor(vesselCount int) float64 {
	f := float64(vesselCount) / e.densityNormalizer
	if f > 1 {
		return 1
	}
	return f
}

// isolationFactor отражает отсутствие подтверждающей tracked-активности:
// чисто тёмный кластер - 1.0, смешанный - конфигурируемая доля, полностью
// tracked - 0
func (e *Engine) isolationFactor(c domain.Cluster) float64 {
	switch {
	case c.AllTracked:
		return 0
	case c.UntrackedCount() == c.VesselCount():
		return 1.0
	default:
		return e.mixedIsolationFactor
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
