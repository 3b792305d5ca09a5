package engine

import (
	"math"

	"github.com/hotspot-microservice/internal/domain"
	"github.com/hotspot-microservice/internal/pkg/utils"
)

// BuildClusters разбивает набор фиксов на кластеры жадным seed-and-absorb
// проходом: очередной необработанный фикс становится seed-ом, все
// необработанные фиксы в пределах radiusKm от seed-а (именно от seed-а, не от
// уже поглощённых участников - полная транзитивная связность не строится)
// поглощаются в его кластер.
//
// Каждый фикс попадает ровно в один кластер. Для фиксированного порядка входа
// и радиуса результат детерминирован; на границах кластеров членство зависит
// от порядка seed-ов. radiusKm <= 0 даёт по одиночному кластеру на фикс.
// O(n^2), n ограничен текущим видимым набором, не историей.
func BuildClusters(fixes []domain.PositionFix, radiusKm float64) []domain.Cluster {
	if len(fixes) == 0 {
		return []domain.Cluster{}
	}

	clusters := make([]domain.Cluster, 0)
	processed := make([]bool, len(fixes))

	for i := range fixes {
		if processed[i] {
			continue
		}
		processed[i] = true

		seed := fixes[i]
		seedPoint := utils.Point{Lat: seed.Lat, Lon: seed.Lon}

		members := []domain.PositionFix{seed}
		allTracked := seed.Tracked
		nearestKm := math.Inf(1)

		if radiusKm > 0 {
			for j := i + 1; j < len(fixes); j++ {
				if processed[j] {
					continue
				}

				d := utils.HaversineKm(seedPoint, utils.Point{Lat: fixes[j].Lat, Lon: fixes[j].Lon})
				if d > radiusKm {
					continue
				}

				members = append(members, fixes[j])
				allTracked = allTracked && fixes[j].Tracked
				if d < nearestKm {
					nearestKm = d
				}
				processed[j] = true
			}
		}

		clusters = append(clusters, finishCluster(seed, members, allTracked, nearestKm))
	}

	return clusters
}

// finishCluster досчитывает центроид и репрезентативную точку. Для одиночных
// кластеров обе совпадают с самим фиксом.
func finishCluster(seed domain.PositionFix, members []domain.PositionFix, allTracked bool, nearestKm float64) domain.Cluster {
	if len(members) == 1 {
		return domain.NewSingletonCluster(seed)
	}

	points := make([]utils.Point, len(members))
	for i, m := range members {
		points[i] = utils.Point{Lat: m.Lat, Lon: m.Lon}
	}

	// members непуст, ошибка пустого набора здесь невозможна
	centroid, _ := utils.SphericalCentroid(points)

	// Репрезентативная точка - участник, ближайший к центроиду: маркер
	// хотспота не должен вставать туда, где нет ни одного судна
	repIdx := 0
	repDist := math.Inf(1)
	for i, p := range points {
		d := utils.HaversineKm(p, centroid)
		if d < repDist {
			repDist = d
			repIdx = i
		}
	}

	return domain.Cluster{
		CentroidLat:                   centroid.Lat,
		CentroidLon:                   centroid.Lon,
		RepresentativeLat:             members[repIdx].Lat,
		RepresentativeLon:             members[repIdx].Lon,
		Members:                       members,
		AllTracked:                    allTracked,
		NearestIntraClusterDistanceKm: nearestKm,
	}
}
