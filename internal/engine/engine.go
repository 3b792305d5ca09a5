// Package engine реализует ядро анализа хотспотов: кластеризацию позиций
// судов, скоринг риска нелегального промысла и ранжирование. Все операции -
// чистые функции над входом, без I/O; единственное разделяемое состояние
// системы живёт в Fix Store.
package engine

// Config - калибровочные константы скоринга. Качественное поведение
// (тёмный + плотный + изолированный => высокий риск) задаётся формулой,
// количественная калибровка - этими значениями.
type Config struct {
	// DensityNormalizer - количество судов, при котором фактор плотности
	// насыщается до 1.0
	DensityNormalizer float64

	// MixedIsolationFactor - фактор изоляции для смешанных кластеров
	// (есть и tracked, и untracked участники)
	MixedIsolationFactor float64
}

const (
	defaultDensityNormalizer    = 10.0
	defaultMixedIsolationFactor = 0.5
)

// Engine - скоринг и ранжирование кластеров. Создаётся один раз на процесс,
// безопасен для конкурентного использования.
type Engine struct {
	densityNormalizer    float64
	mixedIsolationFactor float64
}

// New создаёт Engine; нулевые поля конфига заменяются значениями по умолчанию
func New(cfg Config) *Engine {
	e := &Engine{
		densityNormalizer:    cfg.DensityNormalizer,
		mixedIsolationFactor: cfg.MixedIsolationFactor,
	}
	if e.densityNormalizer <= 0 {
		e.densityNormalizer = defaultDensityNormalizer
	}
	if e.mixedIsolationFactor <= 0 {
		e.mixedIsolationFactor = defaultMixedIsolationFactor
	}
	return e
}
