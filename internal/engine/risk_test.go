package engine_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotspot-microservice/internal/domain"
	"github.com/hotspot-microservice/internal/engine"
)

func clusterOf(untracked, tracked int) domain.Cluster {
	members := make([]domain.PositionFix, 0, untracked+tracked)
	for i := 0; i < untracked; i++ {
		members = append(members, fix(fmt.Sprintf("dark-%d", i), 54, -165, false))
	}
	for i := 0; i < tracked; i++ {
		members = append(members, fix(fmt.Sprintf("ais-%d", i), 54, -165, true))
	}
	c := domain.NewSingletonCluster(members[0])
	c.Members = members
	c.AllTracked = untracked == 0
	return c
}

func TestEngine_Score(t *testing.T) {
	e := engine.New(engine.Config{DensityNormalizer: 10, MixedIsolationFactor: 0.5})

	t.Run("fully tracked cluster scores zero", func(t *testing.T) {
		score, _, reportable := e.Score(clusterOf(0, 8))
		assert.Equal(t, 0.0, score)
		assert.False(t, reportable)
	})

	t.Run("pure dark cluster uses full isolation", func(t *testing.T) {
		// ratio 1.0 * density 8/10 * isolation 1.0 = 0.8
		score, level, reportable := e.Score(clusterOf(8, 0))
		assert.True(t, reportable)
		assert.InDelta(t, 0.8, score, 1e-9)
		assert.Equal(t, domain.RiskLevelCritical, level)
	})

	t.Run("mixed cluster scores strictly below pure dark", func(t *testing.T) {
		pure, _, _ := e.Score(clusterOf(2, 0))
		mixedCluster := clusterOf(1, 1)
		mixed, _, _ := e.Score(mixedCluster)
		assert.Less(t, mixed, pure)
	})

	t.Run("density saturates at the normalizer", func(t *testing.T) {
		atNorm, _, _ := e.Score(clusterOf(10, 0))
		above, _, _ := e.Score(clusterOf(25, 0))
		assert.Equal(t, atNorm, above)
		assert.InDelta(t, 1.0, above, 1e-9)
	})

	t.Run("score below reporting floor is not a hotspot", func(t *testing.T) {
		// ratio 1.0 * density 1/10 * isolation 1.0 = 0.1 < 0.2
		score, level, reportable := e.Score(clusterOf(1, 0))
		assert.InDelta(t, 0.1, score, 1e-9)
		assert.Empty(t, level)
		assert.False(t, reportable)
	})

	t.Run("empty cluster panics", func(t *testing.T) {
		assert.Panics(t, func() {
			e.Score(domain.Cluster{})
		})
	})
}

// Holding vessel count and isolation fixed, more untracked members never
// lowers the score
func TestEngine_Score_MonotoneInUntrackedRatio(t *testing.T) {
	e := engine.New(engine.Config{})

	const total = 10
	prev := -1.0
	for untracked := 1; untracked < total; untracked++ {
		score, _, _ := e.Score(clusterOf(untracked, total-untracked))
		assert.GreaterOrEqual(t, score, prev,
			"untracked=%d scored below untracked=%d", untracked, untracked-1)
		prev = score
	}
}

func TestEngine_Score_DefaultConfig(t *testing.T) {
	e := engine.New(engine.Config{})

	// Defaults: normalizer 10, mixed factor 0.5
	score, _, _ := e.Score(clusterOf(5, 0))
	assert.InDelta(t, 0.5, score, 1e-9)

	score, _, _ = e.Score(clusterOf(5, 5))
	// ratio 0.5 * density 1.0 * mixed 0.5 = 0.25
	assert.InDelta(t, 0.25, score, 1e-9)
}

func TestRiskLevelForScore(t *testing.T) {
	tests := []struct {
		score      float64
		level      domain.RiskLevel
		reportable bool
	}{
		{1.0, domain.RiskLevelCritical, true},
		{0.8, domain.RiskLevelCritical, true},
		{0.79, domain.RiskLevelHigh, true},
		{0.6, domain.RiskLevelHigh, true},
		{0.59, domain.RiskLevelMedium, true},
		{0.4, domain.RiskLevelMedium, true},
		{0.39, domain.RiskLevelLow, true},
		{0.2, domain.RiskLevelLow, true},
		{0.19, "", false},
		{0, "", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("score_%v", tt.score), func(t *testing.T) {
			level, reportable := domain.RiskLevelForScore(tt.score)
			require.Equal(t, tt.reportable, reportable)
			assert.Equal(t, tt.level, level)
		})
	}
}
