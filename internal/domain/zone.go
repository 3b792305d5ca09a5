package domain

// MonitoringZone - географическая зона мониторинга
type MonitoringZone struct {
	Name        string  `json:"name"`
	MinLon      float64 `json:"min_lon"`
	MinLat      float64 `json:"min_lat"`
	MaxLon      float64 `json:"max_lon"`
	MaxLat      float64 `json:"max_lat"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Country     string  `json:"country,omitempty"`
}

// Contains проверяет попадание точки в зону
func (z MonitoringZone) Contains(lat, lon float64) bool {
	return lat >= z.MinLat && lat <= z.MaxLat && lon >= z.MinLon && lon <= z.MaxLon
}

// DefaultMonitoringZones - зоны мониторинга по умолчанию (североамериканские
// промысловые воды)
var DefaultMonitoringZones = []MonitoringZone{
	{
		Name:        "alaska_bering_sea",
		MinLon:      -180, MinLat: 54, MaxLon: -158, MaxLat: 66,
		Description: "Bering Sea - Commercial fishing waters",
		Priority:    "high",
		Country:     "USA",
	},
	{
		Name:        "gulf_of_maine",
		MinLon:      -71, MinLat: 42, MaxLon: -66, MaxLat: 45,
		Description: "Gulf of Maine - Lobster and groundfish",
		Priority:    "high",
		Country:     "USA",
	},
	{
		Name:        "pacific_northwest",
		MinLon:      -130, MinLat: 45, MaxLon: -123, MaxLat: 49,
		Description: "Pacific Northwest - Salmon waters",
		Priority:    "high",
		Country:     "USA",
	},
	{
		Name:        "gulf_of_mexico",
		MinLon:      -98, MinLat: 26, MaxLon: -88, MaxLat: 30,
		Description: "Gulf of Mexico - Shrimp waters",
		Priority:    "medium",
		Country:     "USA",
	},
	{
		Name:        "southern_california",
		MinLon:      -125, MinLat: 32, MaxLon: -117, MaxLat: 35,
		Description: "Southern California - Tuna waters",
		Priority:    "medium",
		Country:     "USA",
	},
	{
		Name:        "canadian_atlantic",
		MinLon:      -65, MinLat: 42, MaxLon: -55, MaxLat: 52,
		Description: "Canadian Atlantic waters",
		Priority:    "medium",
		Country:     "Canada",
	},
}
