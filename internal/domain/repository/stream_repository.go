package repository

import (
	"context"

	"github.com/hotspot-microservice/internal/domain"
)

// StreamRepository - работа с Redis Streams для приёма событий от коллекторов
type StreamRepository interface {
	// CreateConsumerGroup создаёт consumer group для стрима
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ReadBatch читает до count сообщений из стрима (неблокирующий режим)
	ReadBatch(ctx context.Context, stream, group, consumer string, count int64) ([]domain.StreamMessage, error)

	// AckMessage подтверждает обработку сообщения
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// PublishToStream публикует сообщение в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
