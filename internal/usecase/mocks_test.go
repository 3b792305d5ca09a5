package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hotspot-microservice/internal/domain"
)

// MockFixArchive is a mock of FixArchive
type MockFixArchive struct {
	mock.Mock
}

func (m *MockFixArchive) SaveFixes(ctx context.Context, fixes []domain.PositionFix) error {
	args := m.Called(ctx, fixes)
	return args.Error(0)
}

func (m *MockFixArchive) GetFixesSince(ctx context.Context, since time.Time) ([]domain.PositionFix, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PositionFix), args.Error(1)
}

func (m *MockFixArchive) CountFixes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFixArchive) CountFixesByZone(ctx context.Context, zones []string) (map[string]int64, error) {
	args := m.Called(ctx, zones)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
