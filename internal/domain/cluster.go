package domain

import "math"

// Cluster - группа фиксов в пределах активного порога расстояния от seed-фикса.
// Members хранится в порядке обнаружения; кластеры одного прогона не пересекаются.
type Cluster struct {
	CentroidLat                   float64
	CentroidLon                   float64
	RepresentativeLat             float64
	RepresentativeLon             float64
	Members                       []PositionFix
	AllTracked                    bool
	NearestIntraClusterDistanceKm float64
}

// VesselCount возвращает количество судов в кластере
func (c *Cluster) VesselCount() int {
	return len(c.Members)
}

// UntrackedCount возвращает количество untracked ("тёмных") фиксов
func (c *Cluster) UntrackedCount() int {
	n := 0
	for _, m := range c.Members {
		if !m.Tracked {
			n++
		}
	}
	return n
}

// UntrackedRatio - доля untracked фиксов среди участников кластера
func (c *Cluster) UntrackedRatio() float64 {
	if len(c.Members) == 0 {
		return 0
	}
	return float64(c.UntrackedCount()) / float64(len(c.Members))
}

// IsSingleton - кластер из одного фикса; у него NearestIntraClusterDistanceKm = +Inf
func (c *Cluster) IsSingleton() bool {
	return len(c.Members) == 1
}

// NewSingletonCluster создаёт кластер из одного фикса: сам фикс служит
// и центроидом, и репрезентативной точкой
func NewSingletonCluster(fix PositionFix) Cluster {
	return Cluster{
		CentroidLat:                   fix.Lat,
		CentroidLon:                   fix.Lon,
		RepresentativeLat:             fix.Lat,
		RepresentativeLon:             fix.Lon,
		Members:                       []PositionFix{fix},
		AllTracked:                    fix.Tracked,
		NearestIntraClusterDistanceKm: math.Inf(1),
	}
}
