package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"channel-insights-service/internal/app/service"
	"channel-insights-service/internal/transport/httpserver/dto"
)

// AdminHandler handles admin-related HTTP requests.
type AdminHandler struct {
	refreshService *service.RefreshService
	logger         *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(refreshSvc *service.RefreshService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		refreshService: refreshSvc,
		logger:         logger,
	}
}

// RefreshAll handles POST /api/v1/admin/refresh
func (h *AdminHandler) RefreshAll(c *fiber.Ctx) error {
	h.logger.Info("manual refresh triggered")

	results, err := h.refreshService.RefreshAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
			Code:  "REFRESH_FAILED",
		})
	}

	return c.JSON(dto.FromRefreshResults(results))
}

// RefreshChannel handles POST /api/v1/admin/refresh/:id
func (h *AdminHandler) RefreshChannel(c *fiber.Ctx) error {
	channelID := c.Params("id")
	if channelID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "channel id is required",
			Code:  "MISSING_ID",
		})
	}

	h.logger.Info("manual channel refresh triggered", zap.String("channel_id", channelID))

	result, err := h.refreshService.RefreshChannel(c.Context(), channelID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: err.Error(),
			Code:  "REFRESH_FAILED",
		})
	}

	return c.JSON(dto.RefreshResultResponse{
		ChannelID: result.ChannelID,
		Score:     result.Score,
		Duration:  result.Duration.String(),
	})
}
