package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hotspot-microservice/internal/domain"
	"github.com/hotspot-microservice/internal/domain/repository"
	"github.com/hotspot-microservice/internal/repository/postgres/testhelpers"
)

// FixRepositoryTestSuite тестирует все методы FixArchive
type FixRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.FixArchive
	ctx    context.Context
}

// SetupSuite выполняется один раз перед всеми тестами
func (s *FixRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := testhelpers.ApplyMigrations(
		s.testDB.DB.DB,
		"../../../migrations",
	)
	s.NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewFixRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

// SetupTest выполняется перед каждым тестом
func (s *FixRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	err := s.testDB.Cleanup(s.ctx)
	s.NoError(err, "Failed to cleanup test database")
}

// TearDownSuite выполняется один раз после всех тестов
func (s *FixRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *FixRepositoryTestSuite) seed(fixes ...domain.PositionFix) {
	err := s.repo.SaveFixes(s.ctx, fixes)
	s.Require().NoError(err)
}

func (s *FixRepositoryTestSuite) TestSaveFixes_EmptyBatch() {
	err := s.repo.SaveFixes(s.ctx, nil)
	s.NoError(err)
}

func (s *FixRepositoryTestSuite) TestSaveFixes_UpsertByID() {
	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.seed(domain.PositionFix{ID: "a", Lat: 54, Lon: -165, Timestamp: at, Tracked: false})
	s.seed(domain.PositionFix{ID: "a", Lat: 55, Lon: -166, Timestamp: at.Add(time.Hour), Tracked: true})

	count, err := s.repo.CountFixes(s.ctx)
	s.NoError(err)
	s.Equal(int64(1), count)

	fixes, err := s.repo.GetFixesSince(s.ctx, at)
	s.NoError(err)
	s.Require().Len(fixes, 1)
	s.Equal(55.0, fixes[0].Lat)
	s.True(fixes[0].Tracked)
}

func (s *FixRepositoryTestSuite) TestGetFixesSince_FiltersByTime() {
	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.seed(
		domain.PositionFix{ID: "old", Lat: 10, Lon: 20, Timestamp: at.Add(-48 * time.Hour), Tracked: true},
		domain.PositionFix{ID: "recent", Lat: 11, Lon: 21, Timestamp: at, Tracked: false},
		domain.PositionFix{ID: "boundary", Lat: 12, Lon: 22, Timestamp: at.Add(-24 * time.Hour), Tracked: true},
	)

	fixes, err := s.repo.GetFixesSince(s.ctx, at.Add(-24*time.Hour))
	s.NoError(err)
	s.Require().Len(fixes, 2)
	s.Equal("boundary", fixes[0].ID)
	s.Equal("recent", fixes[1].ID)
}

func (s *FixRepositoryTestSuite) TestCountFixesByZone() {
	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	s.seed(
		domain.PositionFix{ID: "a", Lat: 54, Lon: -165, Timestamp: at, Zone: "alaska_bering_sea"},
		domain.PositionFix{ID: "b", Lat: 54.1, Lon: -165.1, Timestamp: at, Zone: "alaska_bering_sea"},
		domain.PositionFix{ID: "c", Lat: 46, Lon: -126, Timestamp: at, Zone: "pacific_northwest"},
		domain.PositionFix{ID: "d", Lat: 0, Lon: 0, Timestamp: at},
	)

	counts, err := s.repo.CountFixesByZone(s.ctx, []string{"alaska_bering_sea", "pacific_northwest", "gulf_of_mexico"})
	s.NoError(err)
	s.Equal(int64(2), counts["alaska_bering_sea"])
	s.Equal(int64(1), counts["pacific_northwest"])
	s.NotContains(counts, "gulf_of_mexico")
}

func TestFixRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FixRepositoryTestSuite))
}
