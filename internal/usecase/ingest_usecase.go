package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/hotspot-microservice/internal/domain"
	"github.com/hotspot-microservice/internal/domain/repository"
	"github.com/hotspot-microservice/internal/pkg/errors"
	"github.com/hotspot-microservice/internal/pkg/validator"
	"github.com/hotspot-microservice/internal/usecase/dto"
)

// IngestUseCase обрабатывает загрузку батчей позиций в Fix Store.
// Архив (Postgres) опционален: при nil архивирование пропускается.
type IngestUseCase struct {
	store   repository.FixStore
	archive repository.FixArchive
	logger  *zap.Logger
}

// NewIngestUseCase создает новый экземпляр IngestUseCase
func NewIngestUseCase(
	store repository.FixStore,
	archive repository.FixArchive,
	logger *zap.Logger,
) *IngestUseCase {
	return &IngestUseCase{
		store:   store,
		archive: archive,
		logger:  logger,
	}
}

// IngestFixes валидирует и загружает батч. Невалидные фиксы отклоняются
// поштучно и перечисляются в отчёте, батч при этом не прерывается.
func (uc *IngestUseCase) IngestFixes(ctx context.Context, req dto.IngestFixesRequest) (*dto.IngestFixesResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		})
	}

	fixes := make([]domain.PositionFix, 0, len(req.Fixes))
	for _, f := range req.Fixes {
		fixes = append(fixes, f.ToDomain())
	}

	result := uc.IngestBatch(ctx, fixes, req.Source)

	return &dto.IngestFixesResponse{
		Accepted: result.Accepted,
		Rejected: result.Rejected,
	}, nil
}

// IngestBatch загружает доменный батч в Fix Store и архивирует принятое.
// Используется и HTTP-ингестом, и воркером стрима.
func (uc *IngestUseCase) IngestBatch(ctx context.Context, fixes []domain.PositionFix, source string) domain.UpsertResult {
	result := uc.store.Upsert(fixes)

	uc.logger.Info("Fix batch ingested",
		zap.String("source", source),
		zap.Int("accepted", result.Accepted),
		zap.Int("rejected", len(result.Rejected)),
	)
	for _, rej := range result.Rejected {
		uc.logger.Warn("Fix rejected",
			zap.String("fix_id", rej.ID),
			zap.String("reason", rej.Reason),
		)
	}

	// Архивирование best-effort: принятые данные уже в Fix Store
	if uc.archive != nil && result.Accepted > 0 {
		if err := uc.archive.SaveFixes(ctx, acceptedOnly(fixes, result.Rejected)); err != nil {
			uc.logger.Warn("Failed to archive fixes", zap.Error(err))
		}
	}

	return result
}

// GetSummary возвращает сводку текущего набора фиксов
func (uc *IngestUseCase) GetSummary(ctx context.Context) domain.FixSummary {
	return uc.store.Summary()
}

// WarmStore прогревает Fix Store из архива при старте. Пустой или
// недоступный архив не считается фатальным.
func (uc *IngestUseCase) WarmStore(ctx context.Context, window domain.TimeRange) {
	if uc.archive == nil {
		return
	}

	fixes, err := uc.archive.GetFixesSince(ctx, window.Start)
	if err != nil {
		uc.logger.Warn("Failed to warm fix store from archive", zap.Error(err))
		return
	}
	if len(fixes) == 0 {
		return
	}

	result := uc.store.Upsert(fixes)
	uc.logger.Info("Fix store warmed from archive",
		zap.Int("loaded", result.Accepted),
		zap.Int("rejected", len(result.Rejected)),
	)
}

func acceptedOnly(fixes []domain.PositionFix, rejected []domain.RejectedFix) []domain.PositionFix {
	if len(rejected) == 0 {
		return fixes
	}

	rejectedIDs := make(map[string]struct{}, len(rejected))
	for _, r := range rejected {
		rejectedIDs[r.ID] = struct{}{}
	}

	accepted := make([]domain.PositionFix, 0, len(fixes))
	for _, f := range fixes {
		if _, ok := rejectedIDs[f.ID]; ok {
			continue
		}
		accepted = append(accepted, f)
	}
	return accepted
}
