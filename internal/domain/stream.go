package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names (должны совпадать с коллекторами)
const (
	StreamFixIngest = "stream:fixes:ingest"
)

// FixIngestEvent - входящее событие с батчем позиций от коллектора
type FixIngestEvent struct {
	BatchID    uuid.UUID     `json:"batch_id"`
	Source     string        `json:"source"`
	Fixes      []PositionFix `json:"fixes"`
	ObservedAt time.Time     `json:"observed_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
