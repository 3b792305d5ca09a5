package dto

import (
	"time"

	"github.com/hotspot-microservice/internal/domain"
)

// FixInput - одна позиция судна в батче ингеста
type FixInput struct {
	ID             string    `json:"id" validate:"required"`
	Lat            float64   `json:"lat" validate:"min=-90,max=90"`
	Lon            float64   `json:"lon" validate:"min=-180,max=180"`
	Timestamp      time.Time `json:"timestamp" validate:"required"`
	Tracked        bool      `json:"tracked"`
	Classification string    `json:"classification,omitempty"`
	Zone           string    `json:"zone,omitempty"`
}

// ToDomain конвертирует входную позицию в доменную модель
func (f FixInput) ToDomain() domain.PositionFix {
	return domain.PositionFix{
		ID:             f.ID,
		Lat:            f.Lat,
		Lon:            f.Lon,
		Timestamp:      f.Timestamp,
		Tracked:        f.Tracked,
		Classification: f.Classification,
		Zone:           f.Zone,
	}
}

// IngestFixesRequest - запрос на загрузку батча позиций
type IngestFixesRequest struct {
	Source string     `json:"source,omitempty"`
	Fixes  []FixInput `json:"fixes" validate:"required,min=1,max=10000,dive"`
}

// HotspotsQuery - параметры запроса хотспотов. Указатели отличают
// опущенный параметр (подставляется дефолт) от явно заданного
// невалидного значения (запрос отклоняется).
type HotspotsQuery struct {
	WindowStart    *time.Time
	WindowEnd      *time.Time
	VisibleTracked bool
	RadiusKm       *float64
	MinVessels     *int
	MinRisk        *float64
	Limit          *int
}

// RegionRequest - запрос хотспотов внутри bounding box
type RegionRequest struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
	Query  HotspotsQuery
}

// IsValid - границы региона валидны и лежат в допустимых координатах
func (r RegionRequest) IsValid() bool {
	if r.MinLat > r.MaxLat || r.MinLon > r.MaxLon {
		return false
	}
	return r.MinLat >= -90 && r.MaxLat <= 90 && r.MinLon >= -180 && r.MaxLon <= 180
}
