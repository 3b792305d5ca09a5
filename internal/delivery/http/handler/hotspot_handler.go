package handler

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/hotspot-microservice/internal/pkg/errors"
	"github.com/hotspot-microservice/internal/pkg/utils"
	"github.com/hotspot-microservice/internal/usecase"
	"github.com/hotspot-microservice/internal/usecase/dto"
)

// HotspotHandler обрабатывает запросы хотспотов
type HotspotHandler struct {
	hotspotUC *usecase.HotspotUseCase
	logger    *zap.Logger
}

// NewHotspotHandler создает новый экземпляр HotspotHandler
func NewHotspotHandler(hotspotUC *usecase.HotspotUseCase, logger *zap.Logger) *HotspotHandler {
	return &HotspotHandler{
		hotspotUC: hotspotUC,
		logger:    logger,
	}
}

// parseHotspotsQuery разбирает общие query-параметры хотспотов.
// Опущенный параметр остаётся nil (usecase подставит дефолт), явно
// заданное нечитаемое значение - ошибка, молчаливой коррекции нет.
func parseHotspotsQuery(c *fiber.Ctx) (dto.HotspotsQuery, error) {
	q := dto.HotspotsQuery{VisibleTracked: true}

	if v := c.Query("window_start"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return q, badParam("window_start", v)
		}
		q.WindowStart = &t
	}
	if v := c.Query("window_end"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return q, badParam("window_end", v)
		}
		q.WindowEnd = &t
	}
	if v := c.Query("visible_tracked"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return q, badParam("visible_tracked", v)
		}
		q.VisibleTracked = b
	}
	if v := c.Query("radius_km"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, badParam("radius_km", v)
		}
		q.RadiusKm = &f
	}
	if v := c.Query("min_vessels"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, badParam("min_vessels", v)
		}
		q.MinVessels = &n
	}
	if v := c.Query("min_risk"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, badParam("min_risk", v)
		}
		q.MinRisk = &f
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return q, badParam("limit", v)
		}
		q.Limit = &n
	}

	return q, nil
}

func badParam(name, value string) error {
	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
		"param": name,
		"value": value,
	})
}

func requiredFloat(c *fiber.Ctx, name string) (float64, error) {
	v := c.Query(name)
	if v == "" {
		return 0, badParam(name, "")
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, badParam(name, v)
	}
	return f, nil
}

// GetHotspots godoc
// @Summary Get ranked fishing hotspots
// @Description Кластеризует видимые позиции в окне и возвращает ранжированные хотспоты
// @Tags Hotspots
// @Produce json
// @Param window_start query string false "Начало окна (RFC3339), по умолчанию 24 часа назад"
// @Param window_end query string false "Конец окна (RFC3339), по умолчанию сейчас"
// @Param visible_tracked query bool false "Видимость untracked детекций, по умолчанию true"
// @Param radius_km query number false "Радиус кластеризации в км, по умолчанию 50"
// @Param min_vessels query int false "Минимальный размер кластера, по умолчанию 3"
// @Param min_risk query number false "Минимальный risk score [0,1], по умолчанию 0"
// @Param limit query int false "Максимум хотспотов в ответе, по умолчанию 100, <=0 без ограничения"
// @Success 200 {object} utils.SuccessResponse{data=dto.HotspotsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/hotspots [get]
func (h *HotspotHandler) GetHotspots(c *fiber.Ctx) error {
	q, err := parseHotspotsQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.hotspotUC.GetHotspots(c.Context(), q)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// GetHotspotsByRegion godoc
// @Summary Get hotspots within a bounding box
// @Description Хотспоты, чья репрезентативная точка попадает в заданный регион
// @Tags Hotspots
// @Produce json
// @Param min_lat query number true "Южная граница"
// @Param max_lat query number true "Северная граница"
// @Param min_lon query number true "Западная граница"
// @Param max_lon query number true "Восточная граница"
// @Success 200 {object} utils.SuccessResponse{data=dto.HotspotsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/hotspots/region [get]
func (h *HotspotHandler) GetHotspotsByRegion(c *fiber.Ctx) error {
	q, err := parseHotspotsQuery(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.RegionRequest{Query: q}
	if req.MinLat, err = requiredFloat(c, "min_lat"); err != nil {
		return utils.SendError(c, err)
	}
	if req.MaxLat, err = requiredFloat(c, "max_lat"); err != nil {
		return utils.SendError(c, err)
	}
	if req.MinLon, err = requiredFloat(c, "min_lon"); err != nil {
		return utils.SendError(c, err)
	}
	if req.MaxLon, err = requiredFloat(c, "max_lon"); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.hotspotUC.GetHotspotsByRegion(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// GetStatistics godoc
// @Summary Get aggregate engine statistics
// @Description Возвращает агрегированную статистику по фиксам и хотспотам, кешируется
// @Tags Hotspots
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.StatisticsResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/hotspots/statistics [get]
func (h *HotspotHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.hotspotUC.GetStatistics(c.Context())
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}

// GetRiskLevels godoc
// @Summary Get risk level reference data
// @Description Справочник уровней риска и их пороговых значений
// @Tags Hotspots
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RiskLevelsResponse}
// @Router /api/v1/hotspots/risk-levels [get]
func (h *HotspotHandler) GetRiskLevels(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.hotspotUC.GetRiskLevels(c.Context()), nil)
}

// GetZones godoc
// @Summary Get monitoring zones
// @Description Настроенные географические зоны мониторинга
// @Tags Zones
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.MonitoringZone}
// @Router /api/v1/zones [get]
func (h *HotspotHandler) GetZones(c *fiber.Ctx) error {
	zones := h.hotspotUC.GetZones(c.Context())
	return utils.SendSuccess(c, zones, &utils.Meta{Total: len(zones)})
}
