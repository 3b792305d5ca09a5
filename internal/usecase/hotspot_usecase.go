package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/hotspot-microservice/internal/config"
	"github.com/hotspot-microservice/internal/domain"
	"github.com/hotspot-microservice/internal/domain/repository"
	"github.com/hotspot-microservice/internal/engine"
	"github.com/hotspot-microservice/internal/pkg/errors"
	"github.com/hotspot-microservice/internal/usecase/dto"
)

const statsCacheKey = "stats:hotspots"

// HotspotUseCase - фасад запросов хотспотов: валидация параметров,
// выборка из Fix Store, кластеризация, скоринг и ранжирование.
// Не хранит состояния между вызовами и безопасен для конкурентных запросов.
type HotspotUseCase struct {
	store     repository.FixStore
	archive   repository.FixArchive
	cacheRepo repository.CacheRepository
	engine    *engine.Engine
	cfg       config.EngineConfig
	statsTTL  time.Duration
	logger    *zap.Logger
}

// NewHotspotUseCase создает новый экземпляр HotspotUseCase.
// Архив и кеш опциональны (nil допустим, соответствующие поля статистики
// и кеширование тогда пропускаются).
func NewHotspotUseCase(
	store repository.FixStore,
	archive repository.FixArchive,
	cacheRepo repository.CacheRepository,
	eng *engine.Engine,
	cfg config.EngineConfig,
	statsTTL time.Duration,
	logger *zap.Logger,
) *HotspotUseCase {
	return &HotspotUseCase{
		store:     store,
		archive:   archive,
		cacheRepo: cacheRepo,
		engine:    eng,
		cfg:       cfg,
		statsTTL:  statsTTL,
		logger:    logger,
	}
}

// resolvedQuery - параметры запроса после подстановки дефолтов
type resolvedQuery struct {
	window         domain.TimeRange
	visibleTracked bool
	radiusKm       float64
	minVessels     int
	minRisk        float64
	limit          int
}

// resolve подставляет дефолты вместо опущенных параметров и отклоняет
// явно невалидные значения. Молчаливой коррекции нет: отрицательный
// радиус - ошибка, а не ноль.
func (uc *HotspotUseCase) resolve(q dto.HotspotsQuery) (resolvedQuery, error) {
	now := time.Now().UTC()

	r := resolvedQuery{
		visibleTracked: q.VisibleTracked,
		radiusKm:       uc.cfg.DefaultRadiusKm,
		minVessels:     uc.cfg.DefaultMinVessels,
		minRisk:        0,
		limit:          uc.cfg.DefaultLimit,
	}

	switch {
	case q.WindowStart != nil && q.WindowEnd != nil:
		r.window = domain.TimeRange{Start: *q.WindowStart, End: *q.WindowEnd}
	case q.WindowStart != nil:
		r.window = domain.TimeRange{Start: *q.WindowStart, End: now}
	case q.WindowEnd != nil:
		r.window = domain.TimeRange{Start: q.WindowEnd.Add(-uc.cfg.DefaultWindow), End: *q.WindowEnd}
	default:
		r.window = domain.TimeRange{Start: now.Add(-uc.cfg.DefaultWindow), End: now}
	}
	if !r.window.IsValid() {
		return resolvedQuery{}, errors.ErrInvalidTimeWindow
	}

	if q.RadiusKm != nil {
		if *q.RadiusKm < 0 {
			return resolvedQuery{}, errors.ErrInvalidRadius
		}
		r.radiusKm = *q.RadiusKm
	}

	if q.MinVessels != nil {
		if *q.MinVessels < 0 {
			return resolvedQuery{}, errors.ErrInvalidMinVessels
		}
		r.minVessels = *q.MinVessels
	}

	if q.MinRisk != nil {
		if *q.MinRisk < 0 || *q.MinRisk > 1 {
			return resolvedQuery{}, errors.ErrInvalidMinRisk
		}
		r.minRisk = *q.MinRisk
	}

	if q.Limit != nil {
		// limit <= 0 означает "без ограничения"
		r.limit = *q.Limit
	}

	return r, nil
}

// compute выполняет полный проход движка для разрешённых параметров
func (uc *HotspotUseCase) compute(r resolvedQuery) []domain.Hotspot {
	fixes := uc.store.Query(r.window, r.visibleTracked)
	clusters := engine.BuildClusters(fixes, r.radiusKm)
	return uc.engine.Rank(clusters, r.minVessels, r.minRisk)
}

// GetHotspots возвращает ранжированные хотспоты для заданного окна
func (uc *HotspotUseCase) GetHotspots(ctx context.Context, q dto.HotspotsQuery) (*dto.HotspotsResponse, error) {
	r, err := uc.resolve(q)
	if err != nil {
		return nil, err
	}

	hotspots := uc.compute(r)
	total := len(hotspots)
	if r.limit > 0 && len(hotspots) > r.limit {
		hotspots = hotspots[:r.limit]
	}

	uc.logger.Debug("Hotspots computed",
		zap.Int("total", total),
		zap.Int("returned", len(hotspots)),
		zap.Float64("radius_km", r.radiusKm),
	)

	return newHotspotsResponse(hotspots, total, r.window), nil
}

// GetHotspotsByRegion возвращает хотспоты, чья репрезентативная точка
// попадает в bounding box
func (uc *HotspotUseCase) GetHotspotsByRegion(ctx context.Context, req dto.RegionRequest) (*dto.HotspotsResponse, error) {
	if !req.IsValid() {
		return nil, errors.ErrInvalidRegion
	}

	r, err := uc.resolve(req.Query)
	if err != nil {
		return nil, err
	}

	var inRegion []domain.Hotspot
	for _, h := range uc.compute(r) {
		lat, lon := h.Cluster.RepresentativeLat, h.Cluster.RepresentativeLon
		if lat >= req.MinLat && lat <= req.MaxLat && lon >= req.MinLon && lon <= req.MaxLon {
			inRegion = append(inRegion, h)
		}
	}

	total := len(inRegion)
	if r.limit > 0 && len(inRegion) > r.limit {
		inRegion = inRegion[:r.limit]
	}

	return newHotspotsResponse(inRegion, total, r.window), nil
}

// GetStatistics возвращает агрегированную статистику, используя кеш
// когда возможно
func (uc *HotspotUseCase) GetStatistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.Get(ctx, statsCacheKey)
		if err != nil {
			uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
		} else if cached != nil {
			var stats dto.StatisticsResponse
			if err := json.Unmarshal(cached, &stats); err == nil {
				uc.logger.Debug("Statistics fetched from cache")
				return &stats, nil
			}
			uc.logger.Warn("Failed to unmarshal cached stats", zap.Error(err))
		}
	}

	stats := uc.buildStatistics(ctx)

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := uc.cacheRepo.Set(ctx, statsCacheKey, data, uc.statsTTL); err != nil {
				uc.logger.Warn("Failed to cache stats", zap.Error(err))
			}
		}
	}

	return stats, nil
}

func (uc *HotspotUseCase) buildStatistics(ctx context.Context) *dto.StatisticsResponse {
	summary := uc.store.Summary()

	// Хотспоты считаются с дефолтными параметрами и полной видимостью
	r, _ := uc.resolve(dto.HotspotsQuery{VisibleTracked: true})
	hotspots := uc.compute(r)

	byLevel := make(map[string]int, 4)
	for _, h := range hotspots {
		byLevel[string(h.RiskLevel)]++
	}

	stats := &dto.StatisticsResponse{
		TotalFixes:     summary.Total,
		TrackedFixes:   summary.Tracked,
		UntrackedFixes: summary.Untracked,
		TotalHotspots:  len(hotspots),
		ByRiskLevel:    byLevel,
		GeneratedAt:    time.Now().UTC(),
	}

	if uc.archive != nil {
		if count, err := uc.archive.CountFixes(ctx); err != nil {
			uc.logger.Warn("Failed to count archived fixes", zap.Error(err))
		} else {
			stats.ArchivedFixes = count
		}

		zones := make([]string, 0, len(domain.DefaultMonitoringZones))
		for _, z := range domain.DefaultMonitoringZones {
			zones = append(zones, z.Name)
		}
		if counts, err := uc.archive.CountFixesByZone(ctx, zones); err != nil {
			uc.logger.Warn("Failed to count fixes by zone", zap.Error(err))
		} else {
			stats.ZoneCounts = counts
		}
	}

	return stats
}

// GetRiskLevels возвращает справочник уровней риска
func (uc *HotspotUseCase) GetRiskLevels(ctx context.Context) *dto.RiskLevelsResponse {
	return &dto.RiskLevelsResponse{
		Levels: []dto.RiskLevelInfo{
			{
				Level:       string(domain.RiskLevelCritical),
				MinScore:    domain.CriticalRiskThreshold,
				Description: "Immediate attention required, high confidence of illegal activity",
			},
			{
				Level:       string(domain.RiskLevelHigh),
				MinScore:    domain.HighRiskThreshold,
				Description: "Strong indicators of suspicious fishing activity",
			},
			{
				Level:       string(domain.RiskLevelMedium),
				MinScore:    domain.MediumRiskThreshold,
				Description: "Moderate risk, worth monitoring",
			},
			{
				Level:       string(domain.RiskLevelLow),
				MinScore:    domain.LowRiskThreshold,
				Description: "Low risk, routine observation",
			},
		},
	}
}

// GetZones возвращает настроенные зоны мониторинга
func (uc *HotspotUseCase) GetZones(ctx context.Context) []domain.MonitoringZone {
	return domain.DefaultMonitoringZones
}

func newHotspotsResponse(hotspots []domain.Hotspot, total int, window domain.TimeRange) *dto.HotspotsResponse {
	out := make([]dto.HotspotResponse, 0, len(hotspots))
	for _, h := range hotspots {
		out = append(out, dto.NewHotspotResponse(h))
	}

	return &dto.HotspotsResponse{
		Hotspots:    out,
		Total:       total,
		WindowStart: window.Start,
		WindowEnd:   window.End,
	}
}
