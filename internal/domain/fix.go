package domain

import "time"

// PositionFix - одно наблюдение позиции судна (AIS или спутниковая детекция).
// ID не обязан быть глобально уникальным между tracked/untracked источниками,
// но last-write-wins в Fix Store идёт именно по нему.
type PositionFix struct {
	ID             string    `json:"id" db:"id"`
	Lat            float64   `json:"lat" db:"lat"`
	Lon            float64   `json:"lon" db:"lon"`
	Timestamp      time.Time `json:"timestamp" db:"observed_at"`
	Tracked        bool      `json:"tracked" db:"tracked"`
	Classification string    `json:"classification,omitempty" db:"classification"`
	Zone           string    `json:"zone,omitempty" db:"zone"`
}

// TimeRange - временное окно выборки, обе границы включительно
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains проверяет попадание момента в окно
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// IsValid - окно валидно, если конец не раньше начала
func (r TimeRange) IsValid() bool {
	return !r.End.Before(r.Start)
}

// RejectedFix - фикс, отклонённый при ингесте, с причиной.
// Отклонение одного фикса не прерывает обработку остального батча.
type RejectedFix struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// UpsertResult - итог загрузки батча фиксов
type UpsertResult struct {
	Accepted int           `json:"accepted"`
	Rejected []RejectedFix `json:"rejected,omitempty"`
}

// FixSummary - сводка по текущему набору фиксов
type FixSummary struct {
	Total     int `json:"total"`
	Tracked   int `json:"tracked"`
	Untracked int `json:"untracked"`
}
