package dto

import (
	"fmt"
	"time"

	"github.com/hotspot-microservice/internal/domain"
)

// HotspotResponse - один хотспот в выдаче API.
// Координаты lat/lon указывают на репрезентативную точку кластера
// (реальный фикс), центроид отдаётся отдельно.
type HotspotResponse struct {
	ID             string  `json:"id"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	CentroidLat    float64 `json:"centroid_lat"`
	CentroidLon    float64 `json:"centroid_lon"`
	RiskScore      float64 `json:"risk_score"`
	RiskLevel      string  `json:"risk_level"`
	VesselCount    int     `json:"vessel_count"`
	UntrackedRatio float64 `json:"untracked_ratio"`
	Rank           int     `json:"rank"`
}

// NewHotspotResponse конвертирует доменный хотспот в ответ API
func NewHotspotResponse(h domain.Hotspot) HotspotResponse {
	return HotspotResponse{
		ID:             fmt.Sprintf("hotspot_%d", h.Rank),
		Lat:            h.Cluster.RepresentativeLat,
		Lon:            h.Cluster.RepresentativeLon,
		CentroidLat:    h.Cluster.CentroidLat,
		CentroidLon:    h.Cluster.CentroidLon,
		RiskScore:      h.RiskScore,
		RiskLevel:      string(h.RiskLevel),
		VesselCount:    h.VesselCount,
		UntrackedRatio: h.UntrackedRatio,
		Rank:           h.Rank,
	}
}

// HotspotsResponse - ответ на запрос хотспотов
type HotspotsResponse struct {
	Hotspots    []HotspotResponse `json:"hotspots"`
	Total       int               `json:"total"`
	WindowStart time.Time         `json:"window_start"`
	WindowEnd   time.Time         `json:"window_end"`
}

// IngestFixesResponse - отчёт о загрузке батча
type IngestFixesResponse struct {
	Accepted int                  `json:"accepted"`
	Rejected []domain.RejectedFix `json:"rejected,omitempty"`
}

// StatisticsResponse - агрегированная статистика движка
type StatisticsResponse struct {
	TotalFixes     int              `json:"total_fixes"`
	TrackedFixes   int              `json:"tracked_fixes"`
	UntrackedFixes int              `json:"untracked_fixes"`
	TotalHotspots  int              `json:"total_hotspots"`
	ByRiskLevel    map[string]int   `json:"by_risk_level"`
	ArchivedFixes  int64            `json:"archived_fixes"`
	ZoneCounts     map[string]int64 `json:"zone_counts,omitempty"`
	GeneratedAt    time.Time        `json:"generated_at"`
}

// RiskLevelInfo - справочная информация об уровне риска
type RiskLevelInfo struct {
	Level       string  `json:"level"`
	MinScore    float64 `json:"min_score"`
	Description string  `json:"description"`
}

// RiskLevelsResponse - справочник уровней риска
type RiskLevelsResponse struct {
	Levels []RiskLevelInfo `json:"levels"`
}
