package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/hotspot-microservice/internal/pkg/errors"
	"github.com/hotspot-microservice/internal/pkg/utils"
	"github.com/hotspot-microservice/internal/usecase"
	"github.com/hotspot-microservice/internal/usecase/dto"
)

// FixHandler обрабатывает запросы ингеста и сводки позиций
type FixHandler struct {
	ingestUC *usecase.IngestUseCase
	logger   *zap.Logger
}

// NewFixHandler создает новый экземпляр FixHandler
func NewFixHandler(ingestUC *usecase.IngestUseCase, logger *zap.Logger) *FixHandler {
	return &FixHandler{
		ingestUC: ingestUC,
		logger:   logger,
	}
}

// IngestFixes godoc
// @Summary Ingest a batch of vessel position fixes
// @Description Загружает батч позиций. Невалидные фиксы отклоняются поштучно и перечисляются в отчёте
// @Tags Fixes
// @Accept json
// @Produce json
// @Param request body dto.IngestFixesRequest true "Батч позиций"
// @Success 200 {object} utils.SuccessResponse{data=dto.IngestFixesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/fixes [post]
func (h *FixHandler) IngestFixes(c *fiber.Ctx) error {
	var req dto.IngestFixesRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warn("Failed to parse ingest request", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": err.Error(),
		}))
	}

	resp, err := h.ingestUC.IngestFixes(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// GetSummary godoc
// @Summary Get position fix counts
// @Description Возвращает число фиксов в текущем наборе: всего, tracked, untracked
// @Tags Fixes
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.FixSummary}
// @Router /api/v1/fixes/summary [get]
func (h *FixHandler) GetSummary(c *fiber.Ctx) error {
	summary := h.ingestUC.GetSummary(c.Context())
	return utils.SendSuccess(c, summary, nil)
}
