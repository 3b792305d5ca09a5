package engine

import (
	"sort"

	"github.com/hotspot-microservice/internal/domain"
)

// Rank скорит кластеры, отбрасывает не прошедшие фильтры по размеру и риску,
// сортирует и присваивает 1-based ранги. Кластеры со score ниже порога LOW
// не попадают в выдачу независимо от minRisk. Пустой вход - пустой выход,
// ошибок не бывает.
func (e *Engine) Rank(clusters []domain.Cluster, minVessels int, minRisk float64) []domain.Hotspot {
	hotspots := make([]domain.Hotspot, 0, len(clusters))

	for _, c := range clusters {
		if c.VesselCount() < minVessels {
			continue
		}

		score, level, reportable := e.Score(c)
		if !reportable || score < minRisk {
			continue
		}

		hotspots = append(hotspots, domain.Hotspot{
			Cluster:        c,
			RiskScore:      score,
			RiskLevel:      level,
			VesselCount:    c.VesselCount(),
			UntrackedRatio: c.UntrackedRatio(),
		})
	}

	// score desc, затем vesselCount desc, затем широта центроида asc -
	// полный порядок ради детерминизма между прогонами
	sort.Slice(hotspots, func(i, j int) bool {
		if hotspots[i].RiskScore != hotspots[j].RiskScore {
			return hotspots[i].RiskScore > hotspots[j].RiskScore
		}
		if hotspots[i].VesselCount != hotspots[j].VesselCount {
			return hotspots[i].VesselCount > hotspots[j].VesselCount
		}
		return hotspots[i].Cluster.CentroidLat < hotspots[j].Cluster.CentroidLat
	})

	for i := range hotspots {
		hotspots[i].Rank = i + 1
	}

	return hotspots
}
