package memory

import (
	"sync"

	"github.com/hotspot-microservice/internal/domain"
	"github.com/hotspot-microservice/internal/domain/repository"
	"github.com/hotspot-microservice/internal/pkg/utils"
)

// fixStore - потокобезопасное in-memory хранилище фиксов.
// Порядок выдачи Query стабилен: порядок первой вставки id,
// повторный Upsert заменяет данные, но не двигает позицию.
type fixStore struct {
	mu    sync.RWMutex
	fixes map[string]domain.PositionFix
	order []string
}

func NewFixStore() repository.FixStore {
	return &fixStore{
		fixes: make(map[string]domain.PositionFix),
	}
}

func (s *fixStore) Upsert(fixes []domain.PositionFix) domain.UpsertResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result domain.UpsertResult
	for _, f := range fixes {
		if f.ID == "" {
			result.Rejected = append(result.Rejected, domain.RejectedFix{
				ID:     f.ID,
				Reason: "empty id",
			})
			continue
		}
		if !utils.ValidateCoordinates(f.Lat, f.Lon) {
			result.Rejected = append(result.Rejected, domain.RejectedFix{
				ID:     f.ID,
				Reason: "coordinates out of range",
			})
			continue
		}

		if _, exists := s.fixes[f.ID]; !exists {
			s.order = append(s.order, f.ID)
		}
		s.fixes[f.ID] = f
		result.Accepted++
	}

	return result
}

func (s *fixStore) Query(window domain.TimeRange, visibleTracked bool) []domain.PositionFix {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PositionFix, 0, len(s.order))
	for _, id := range s.order {
		f := s.fixes[id]
		if !f.Tracked && !visibleTracked {
			continue
		}
		if !window.Contains(f.Timestamp) {
			continue
		}
		out = append(out, f)
	}

	return out
}

func (s *fixStore) Summary() domain.FixSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := domain.FixSummary{Total: len(s.fixes)}
	for _, f := range s.fixes {
		if f.Tracked {
			summary.Tracked++
		} else {
			summary.Untracked++
		}
	}

	return summary
}

func (s *fixStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.fixes)
}
