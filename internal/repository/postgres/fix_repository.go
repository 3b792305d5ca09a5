package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/hotspot-microservice/internal/domain"
	"github.com/hotspot-microservice/internal/domain/repository"
	"github.com/hotspot-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

type fixRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFixRepository(db *DB) repository.FixArchive {
	return &fixRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *fixRepository) SaveFixes(ctx context.Context, fixes []domain.PositionFix) error {
	if len(fixes) == 0 {
		return nil
	}

	query := `
		INSERT INTO vessel_fixes (id, lat, lon, observed_at, tracked, classification, zone)
		VALUES (:id, :lat, :lon, :observed_at, :tracked, :classification, :zone)
		ON CONFLICT (id) DO UPDATE SET
			lat = EXCLUDED.lat,
			lon = EXCLUDED.lon,
			observed_at = EXCLUDED.observed_at,
			tracked = EXCLUDED.tracked,
			classification = EXCLUDED.classification,
			zone = EXCLUDED.zone
	`

	if _, err := r.db.NamedExecContext(ctx, query, fixes); err != nil {
		r.logger.Error("Failed to save fixes", zap.Int("count", len(fixes)), zap.Error(err))
		return errors.ErrDatabaseError
	}

	r.logger.Debug("Fixes archived", zap.Int("count", len(fixes)))
	return nil
}

func (r *fixRepository) GetFixesSince(ctx context.Context, since time.Time) ([]domain.PositionFix, error) {
	query := `
		SELECT id, lat, lon, observed_at, tracked, classification, zone
		FROM vessel_fixes
		WHERE observed_at >= $1
		ORDER BY observed_at, id
	`

	var fixes []domain.PositionFix
	if err := r.db.SelectContext(ctx, &fixes, query, since); err != nil {
		r.logger.Error("Failed to load fixes", zap.Time("since", since), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return fixes, nil
}

func (r *fixRepository) CountFixes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM vessel_fixes`); err != nil {
		r.logger.Error("Failed to count fixes", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return count, nil
}

func (r *fixRepository) CountFixesByZone(ctx context.Context, zones []string) (map[string]int64, error) {
	query := `
		SELECT zone, COUNT(*) AS cnt
		FROM vessel_fixes
		WHERE zone = ANY($1)
		GROUP BY zone
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(zones))
	if err != nil {
		r.logger.Error("Failed to count fixes by zone", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	counts := make(map[string]int64, len(zones))
	for rows.Next() {
		var zone string
		var cnt int64
		if err := rows.Scan(&zone, &cnt); err != nil {
			r.logger.Error("Failed to scan zone count", zap.Error(err))
			continue
		}
		counts[zone] = cnt
	}

	return counts, nil
}
