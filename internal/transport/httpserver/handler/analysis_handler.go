// Package handler provides HTTP handlers for the API.
package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"channel-insights-service/internal/app/service"
	"channel-insights-service/internal/transport/httpserver/dto"
	"channel-insights-service/internal/validator"
)

// defaultRankingsLimit caps the ranking list when no limit is given.
const defaultRankingsLimit = 20

// AnalysisHandler handles analysis-related HTTP requests.
type AnalysisHandler struct {
	service   *service.AnalysisService
	validator *validator.Validator
	logger    *zap.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(svc *service.AnalysisService, v *validator.Validator, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// Search handles GET /api/v1/channels/search
func (h *AnalysisHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_PARAMS",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	ref, err := h.service.SearchChannel(c.Context(), req.Query)
	if err != nil {
		h.logger.Error("channel search failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "channel search failed",
			Code:  "INTERNAL_ERROR",
		})
	}

	if ref == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "channel not found",
			Code:  "NOT_FOUND",
		})
	}

	return c.JSON(dto.SearchResponse{Channel: dto.FromChannelRef(ref)})
}

// Analyze handles GET /api/v1/channels/:id/analysis
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	channelID := c.Params("id")
	if channelID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "channel id is required",
			Code:  "MISSING_ID",
		})
	}

	analysis, err := h.service.Analyze(c.Context(), channelID)
	if err != nil {
		h.logger.Error("analysis failed", zap.String("channel_id", channelID), zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "analysis failed",
			Code:  "INTERNAL_ERROR",
		})
	}

	if analysis == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "channel not found",
			Code:  "NOT_FOUND",
		})
	}

	return c.JSON(dto.FromAnalysis(analysis))
}

// Compare handles POST /api/v1/compare
func (h *AnalysisHandler) Compare(c *fiber.Ctx) error {
	var req dto.CompareRequest
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

	entries, err := h.service.Compare(c.Context(), req.ChannelIDs)
	if err != nil {
		h.logger.Error("comparison failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "comparison failed",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(dto.FromCompareEntries(entries))
}

// Rankings handles GET /api/v1/rankings
func (h *AnalysisHandler) Rankings(c *fiber.Ctx) error {
	var req dto.RankingsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_PARAMS",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Code:    "VALIDATION_ERROR",
			Details: err,
		})
	}

	limit := req.Limit
	if limit == 0 {
		limit = defaultRankingsLimit
	}

	snapshots, err := h.service.Rankings(c.Context(), limit)
	if err != nil {
		h.logger.Error("rankings query failed", zap.Error(err))

		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "rankings query failed",
			Code:  "INTERNAL_ERROR",
		})
	}

	total, err := h.service.Count(c.Context())
	if err != nil {
		h.logger.Warn("snapshot count failed", zap.Error(err))
	}

	return c.JSON(dto.FromSnapshots(snapshots, total, time.Now().UTC()))
}
