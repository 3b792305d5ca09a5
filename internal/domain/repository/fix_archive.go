package repository

import (
	"context"
	"time"

	"github.com/hotspot-microservice/internal/domain"
)

// FixArchive - персистентный архив фиксов (Postgres). Используется воркером
// для сохранения принятых батчей и API-процессом для прогрева Fix Store
// при старте.
type FixArchive interface {
	// SaveFixes сохраняет батч фиксов (upsert по id)
	SaveFixes(ctx context.Context, fixes []domain.PositionFix) error

	// GetFixesSince возвращает фиксы, наблюдённые не раньше since
	GetFixesSince(ctx context.Context, since time.Time) ([]domain.PositionFix, error)

	// CountFixes возвращает общее число фиксов в архиве
	CountFixes(ctx context.Context) (int64, error)

	// CountFixesByZone возвращает число фиксов по каждой из зон.
	// Зоны без фиксов в результат не попадают.
	CountFixesByZone(ctx context.Context, zones []string) (map[string]int64, error)
}
