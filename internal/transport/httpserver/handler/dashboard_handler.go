package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"channel-insights-service/internal/app/service"
)

// DashboardHandler handles dashboard-related HTTP requests.
type DashboardHandler struct {
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc *service.AnalysisService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		analysisService: svc,
		logger:          logger,
	}
}

// Render handles GET /dashboard
// Renders the dashboard HTML page using Fiber's template engine.
func (h *DashboardHandler) Render(c *fiber.Ctx) error {
	// Tracked channel count for the header stats
	count, _ := h.analysisService.Count(c.Context())

	return c.Render("pages/dashboard", fiber.Map{
		"Title":        "채널 인사이트",
		"ChannelCount": count,
	}, "layouts/base")
}
