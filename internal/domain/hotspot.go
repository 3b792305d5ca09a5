package domain

// RiskLevel - дискретный уровень риска, чистая функция от risk score
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// Пороговые значения уровней риска. Фиксированы и не конфигурируются,
// чтобы хотспоты из разных отчётов оставались сравнимыми между собой.
const (
	CriticalRiskThreshold = 0.8
	HighRiskThreshold     = 0.6
	MediumRiskThreshold   = 0.4
	LowRiskThreshold      = 0.2
)

// RiskLevelForScore возвращает уровень риска для score из [0,1].
// Score ниже LowRiskThreshold не образует хотспот вообще - такие кластеры
// отбрасываются при ранжировании, второй результат для них false.
func RiskLevelForScore(score float64) (RiskLevel, bool) {
	switch {
	case score >= CriticalRiskThreshold:
		return RiskLevelCritical, true
	case score >= HighRiskThreshold:
		return RiskLevelHigh, true
	case score >= MediumRiskThreshold:
		return RiskLevelMedium, true
	case score >= LowRiskThreshold:
		return RiskLevelLow, true
	default:
		return "", false
	}
}

// Hotspot - кластер, аннотированный риском и рангом. Живёт в пределах одного
// вызова движка: ничего не разделяет с Fix Store и не обновляется после возврата.
type Hotspot struct {
	Cluster        Cluster
	RiskScore      float64
	RiskLevel      RiskLevel
	VesselCount    int
	UntrackedRatio float64
	Rank           int
}
