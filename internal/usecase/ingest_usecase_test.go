package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hotspot-microservice/internal/domain"
	"github.com/hotspot-microservice/internal/pkg/errors"
	"github.com/hotspot-microservice/internal/repository/memory"
	"github.com/hotspot-microservice/internal/usecase"
	"github.com/hotspot-microservice/internal/usecase/dto"
)

func TestIngestUseCase_IngestFixes(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("accepts valid batch and archives it", func(t *testing.T) {
		store := memory.NewFixStore()
		mockArchive := &MockFixArchive{}
		mockArchive.On("SaveFixes", ctx, mock.MatchedBy(func(fixes []domain.PositionFix) bool {
			return len(fixes) == 2
		})).Return(nil)

		uc := usecase.NewIngestUseCase(store, mockArchive, zap.NewNop())

		resp, err := uc.IngestFixes(ctx, dto.IngestFixesRequest{
			Source: "sar-collector",
			Fixes: []dto.FixInput{
				{ID: "a", Lat: 54, Lon: -165, Timestamp: now, Tracked: false},
				{ID: "b", Lat: 54.1, Lon: -165.1, Timestamp: now, Tracked: true},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, resp.Accepted)
		assert.Empty(t, resp.Rejected)
		assert.Equal(t, 2, store.Len())
		mockArchive.AssertExpectations(t)
	})

	t.Run("rejects invalid fixes without dropping the batch", func(t *testing.T) {
		store := memory.NewFixStore()
		mockArchive := &MockFixArchive{}
		// Архивируются только принятые фиксы
		mockArchive.On("SaveFixes", ctx, mock.MatchedBy(func(fixes []domain.PositionFix) bool {
			return len(fixes) == 1 && fixes[0].ID == "good"
		})).Return(nil)

		uc := usecase.NewIngestUseCase(store, mockArchive, zap.NewNop())

		resp, err := uc.IngestFixes(ctx, dto.IngestFixesRequest{
			Fixes: []dto.FixInput{
				{ID: "good", Lat: 10, Lon: 20, Timestamp: now},
				{ID: "bad", Lat: 95, Lon: 20, Timestamp: now},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Accepted)
		require.Len(t, resp.Rejected, 1)
		assert.Equal(t, "bad", resp.Rejected[0].ID)
		mockArchive.AssertExpectations(t)
	})

	t.Run("empty batch fails validation", func(t *testing.T) {
		uc := usecase.NewIngestUseCase(memory.NewFixStore(), nil, zap.NewNop())

		_, err := uc.IngestFixes(ctx, dto.IngestFixesRequest{})

		require.Error(t, err)
		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, "INVALID_REQUEST", appErr.Code)
	})

	t.Run("archive failure does not fail the request", func(t *testing.T) {
		store := memory.NewFixStore()
		mockArchive := &MockFixArchive{}
		mockArchive.On("SaveFixes", ctx, mock.Anything).Return(errors.ErrDatabaseError)

		uc := usecase.NewIngestUseCase(store, mockArchive, zap.NewNop())

		resp, err := uc.IngestFixes(ctx, dto.IngestFixesRequest{
			Fixes: []dto.FixInput{{ID: "a", Lat: 54, Lon: -165, Timestamp: now}},
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Accepted)
		assert.Equal(t, 1, store.Len())
	})
}

func TestIngestUseCase_WarmStore(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	window := domain.TimeRange{Start: now.Add(-24 * time.Hour), End: now}

	t.Run("loads archived fixes into the store", func(t *testing.T) {
		store := memory.NewFixStore()
		mockArchive := &MockFixArchive{}
		mockArchive.On("GetFixesSince", ctx, window.Start).Return([]domain.PositionFix{
			{ID: "a", Lat: 54, Lon: -165, Timestamp: now.Add(-time.Hour)},
			{ID: "b", Lat: 54.1, Lon: -165.1, Timestamp: now.Add(-time.Hour)},
		}, nil)

		uc := usecase.NewIngestUseCase(store, mockArchive, zap.NewNop())
		uc.WarmStore(ctx, window)

		assert.Equal(t, 2, store.Len())
	})

	t.Run("archive error leaves the store empty", func(t *testing.T) {
		store := memory.NewFixStore()
		mockArchive := &MockFixArchive{}
		mockArchive.On("GetFixesSince", ctx, window.Start).Return(nil, errors.ErrDatabaseError)

		uc := usecase.NewIngestUseCase(store, mockArchive, zap.NewNop())
		uc.WarmStore(ctx, window)

		assert.Equal(t, 0, store.Len())
	})

	t.Run("nil archive is a no-op", func(t *testing.T) {
		store := memory.NewFixStore()
		uc := usecase.NewIngestUseCase(store, nil, zap.NewNop())

		uc.WarmStore(ctx, window)

		assert.Equal(t, 0, store.Len())
	})
}
