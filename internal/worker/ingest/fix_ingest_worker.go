package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/hotspot-microservice/internal/domain"
	"github.com/hotspot-microservice/internal/domain/repository"
	"github.com/hotspot-microservice/internal/usecase"
	"github.com/hotspot-microservice/internal/worker"
)

const (
	maxBatchSize    = 20                     // максимум сообщений за раз
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// FixIngestWorker потребляет события с батчами позиций из Redis Stream
// и загружает их в Fix Store через IngestUseCase
type FixIngestWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	ingestUC     *usecase.IngestUseCase
	consumerName string
}

// NewFixIngestWorker создает новый FixIngestWorker
func NewFixIngestWorker(
	streamRepo repository.StreamRepository,
	ingestUC *usecase.IngestUseCase,
	consumerGroup string,
	logger *zap.Logger,
) *FixIngestWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &FixIngestWorker{
		BaseWorker:   worker.NewBaseWorker("fix-ingest", consumerGroup, logger),
		streamRepo:   streamRepo,
		ingestUC:     ingestUC,
		consumerName: consumerName,
	}
}

// Start запускает воркер
func (w *FixIngestWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting FixIngestWorker",
		zap.String("stream", domain.StreamFixIngest),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamFixIngest, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает батч сообщений.
// Возвращает количество прочитанных сообщений.
func (w *FixIngestWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ReadBatch(
		ctx,
		domain.StreamFixIngest,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to read batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	for _, msg := range messages {
		event, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamFixIngest, w.ConsumerGroup(), msg.ID)
			continue
		}

		result := w.ingestUC.IngestBatch(ctx, event.Fixes, event.Source)
		logger.Debug("Ingest event processed",
			zap.String("batch_id", event.BatchID.String()),
			zap.Int("accepted", result.Accepted),
			zap.Int("rejected", len(result.Rejected)))

		if err := w.streamRepo.AckMessage(ctx, domain.StreamFixIngest, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// Не критично - сообщение будет переобработано
		}
	}

	return len(messages), nil
}

// parseMessage парсит сообщение из стрима в FixIngestEvent
func (w *FixIngestWorker) parseMessage(msg domain.StreamMessage) (*domain.FixIngestEvent, error) {
	var event domain.FixIngestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if len(event.Fixes) == 0 {
		return nil, fmt.Errorf("event contains no fixes")
	}

	return &event, nil
}
