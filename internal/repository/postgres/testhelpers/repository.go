package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/hotspot-microservice/internal/domain/repository"
	"github.com/hotspot-microservice/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewFixRepositoryForTest creates a fix archive repository with test database and logger
func NewFixRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.FixArchive {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewFixRepository(pgDB)
}
