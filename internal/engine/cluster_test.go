package engine_test

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotspot-microservice/internal/domain"
	"github.com/hotspot-microservice/internal/engine"
)

func fix(id string, lat, lon float64, tracked bool) domain.PositionFix {
	return domain.PositionFix{
		ID:        id,
		Lat:       lat,
		Lon:       lon,
		Timestamp: time.Date(2025, 9, 19, 12, 0, 0, 0, time.UTC),
		Tracked:   tracked,
	}
}

// ~0.018 degrees of longitude at lat 54 is about 1.2 km
func TestBuildClusters_TwoNearbyFixes(t *testing.T) {
	fixes := []domain.PositionFix{
		fix("sar-1", 54.0, -165.0, false),
		fix("sar-2", 54.018, -165.0, false), // ~2 km north
	}

	clusters := engine.BuildClusters(fixes, 5)

	require.Len(t, clusters, 1)
	assert.Equal(t, 2, clusters[0].VesselCount())
	assert.Equal(t, 1.0, clusters[0].UntrackedRatio())
	assert.False(t, clusters[0].AllTracked)
	assert.InDelta(t, 2.0, clusters[0].NearestIntraClusterDistanceKm, 0.1)
}

func TestBuildClusters_FarFixStaysSeparate(t *testing.T) {
	fixes := []domain.PositionFix{
		fix("a", 54.0, -165.0, false),
		fix("b", 54.009, -165.0, false), // ~1 km
		fix("c", 58.5, -165.0, false),   // ~500 km
	}

	clusters := engine.BuildClusters(fixes, 5)

	require.Len(t, clusters, 2)
	assert.Equal(t, 2, clusters[0].VesselCount())
	assert.Equal(t, 1, clusters[1].VesselCount())
	assert.True(t, clusters[1].IsSingleton())
	assert.True(t, math.IsInf(clusters[1].NearestIntraClusterDistanceKm, 1))
}

func TestBuildClusters_ZeroRadiusYieldsSingletons(t *testing.T) {
	fixes := []domain.PositionFix{
		fix("a", 10, 10, true),
		fix("b", 10, 10, false), // identical position, still its own cluster
		fix("c", 10.001, 10, false),
	}

	clusters := engine.BuildClusters(fixes, 0)

	require.Len(t, clusters, 3)
	for _, c := range clusters {
		assert.True(t, c.IsSingleton())
	}
}

func TestBuildClusters_EmptyInput(t *testing.T) {
	clusters := engine.BuildClusters(nil, 50)
	assert.NotNil(t, clusters)
	assert.Empty(t, clusters)
}

// Every fix ends up in exactly one cluster regardless of radius
func TestBuildClusters_PartitionsInput(t *testing.T) {
	fixes := make([]domain.PositionFix, 0, 40)
	for i := 0; i < 40; i++ {
		fixes = append(fixes, fix(
			fmt.Sprintf("v-%d", i),
			40+float64(i%7)*0.3,
			-70-float64(i%11)*0.4,
			i%3 == 0,
		))
	}

	for _, radius := range []float64{0, 5, 50, 500, 25000} {
		t.Run(fmt.Sprintf("radius_%v", radius), func(t *testing.T) {
			clusters := engine.BuildClusters(fixes, radius)

			seen := make(map[string]int)
			for _, c := range clusters {
				for _, m := range c.Members {
					seen[m.ID]++
				}
			}

			assert.Len(t, seen, len(fixes))
			for id, n := range seen {
				assert.Equal(t, 1, n, "fix %s appears %d times", id, n)
			}
		})
	}
}

// Growing the radius merges clusters, never splits them
func TestBuildClusters_MonotonicMerging(t *testing.T) {
	// Equally spaced fixes along a meridian, ~5.6 km apart
	fixes := make([]domain.PositionFix, 0, 30)
	for i := 0; i < 30; i++ {
		fixes = append(fixes, fix(
			fmt.Sprintf("v-%d", i),
			50+float64(i)*0.05,
			-160,
			false,
		))
	}

	prev := math.MaxInt
	for _, radius := range []float64{0, 1, 5, 20, 100, 1000} {
		n := len(engine.BuildClusters(fixes, radius))
		assert.LessOrEqual(t, n, prev, "radius %v produced more clusters than a smaller radius", radius)
		prev = n
	}
}

func TestBuildClusters_RepresentativePointIsMember(t *testing.T) {
	fixes := []domain.PositionFix{
		fix("a", 54.00, -165.00, false),
		fix("b", 54.02, -165.02, false),
		fix("c", 54.04, -165.04, false),
	}

	clusters := engine.BuildClusters(fixes, 20)
	require.Len(t, clusters, 1)

	c := clusters[0]
	found := false
	for _, m := range c.Members {
		if m.Lat == c.RepresentativeLat && m.Lon == c.RepresentativeLon {
			found = true
		}
	}
	assert.True(t, found, "representative point must coincide with a member fix")
}

func TestBuildClusters_DeterministicForFixedOrder(t *testing.T) {
	fixes := []domain.PositionFix{
		fix("a", 54.0, -165.0, false),
		fix("b", 54.03, -165.0, false),
		fix("c", 54.06, -165.0, false),
	}

	first := engine.BuildClusters(fixes, 5)
	second := engine.BuildClusters(fixes, 5)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, len(first[i].Members), len(second[i].Members))
		for j := range first[i].Members {
			assert.Equal(t, first[i].Members[j].ID, second[i].Members[j].ID)
		}
	}
}

// Absorption is seed-distance based: b within radius of seed a, c within radius
// of b but not of a - c must NOT be chained into a's cluster
func TestBuildClusters_SeedDistanceNotChainLinkage(t *testing.T) {
	fixes := []domain.PositionFix{
		fix("a", 54.0, -165.0, false),
		fix("b", 54.036, -165.0, false), // ~4 km from a
		fix("c", 54.072, -165.0, false), // ~4 km from b, ~8 km from a
	}

	clusters := engine.BuildClusters(fixes, 5)

	require.Len(t, clusters, 2)
	assert.Equal(t, 2, clusters[0].VesselCount())
	assert.Equal(t, "c", clusters[1].Members[0].ID)
}
