package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"channel-insights-service/internal/app/service"
	"channel-insights-service/internal/transport/httpserver/dto"
	"channel-insights-service/internal/validator"
)

// SelectionHandler handles saved channel selections.
type SelectionHandler struct {
	service   *service.SelectionService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewSelectionHandler creates a new SelectionHandler.
func NewSelectionHandler(svc *service.SelectionService, v *validator.Validator, logger *zap.Logger) *SelectionHandler {
	return &SelectionHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// Get handles GET /api/v1/selections/:key
func (h *SelectionHandler) Get(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "selection key is required",
			Code:  "MISSING_KEY",
		})
	}

	refs, err := h.service.Get(c.Context(), key)
	if err != nil {
		h.logger.Error("selection load failed", zap.String("key", key), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to load selection",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromSelection(refs))
}

// Put handles PUT /api/v1/selections/:key
func (h *SelectionHandler) Put(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "selection key is required",
			Code:  "MISSING_KEY",
		})
	}

	var req dto.SelectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	saved, err := h.service.Save(c.Context(), key, req.ToRefs())
	if err != nil {
		h.logger.Error("selection save failed", zap.String("key", key), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to save selection",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromSelection(saved))
}
