package utils

import (
	"errors"
	"math"
)

const earthRadiusKm = 6371.0

// Point - точка на сфере в градусах
type Point struct {
	Lat float64
	Lon float64
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func radToDeg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// HaversineKm вычисляет расстояние по большому кругу между двумя точками в километрах
func HaversineKm(a, b Point) float64 {
	dLat := degToRad(b.Lat - a.Lat)
	dLon := degToRad(b.Lon - a.Lon)

	lat1Rad := degToRad(a.Lat)
	lat2Rad := degToRad(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// ErrEmptyPointSet возвращается при вычислении центроида пустого набора точек
var ErrEmptyPointSet = errors.New("cannot compute centroid of empty point set")

// SphericalCentroid вычисляет центроид набора точек через среднее единичных 3D-векторов.
// Арифметическое среднее широт/долгот ломается на антимеридиане и у полюсов,
// векторное среднее этим не страдает.
func SphericalCentroid(points []Point) (Point, error) {
	if len(points) == 0 {
		return Point{}, ErrEmptyPointSet
	}

	var x, y, z float64
	for _, p := range points {
		latRad := degToRad(p.Lat)
		lonRad := degToRad(p.Lon)
		x += math.Cos(latRad) * math.Cos(lonRad)
		y += math.Cos(latRad) * math.Sin(lonRad)
		z += math.Sin(latRad)
	}

	n := float64(len(points))
	x /= n
	y /= n
	z /= n

	norm := math.Sqrt(x*x + y*y + z*z)
	x /= norm
	y /= norm
	z /= norm

	return Point{
		Lat: radToDeg(math.Asin(z)),
		Lon: radToDeg(math.Atan2(y, x)),
	}, nil
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
