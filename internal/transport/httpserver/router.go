// Package httpserver provides HTTP server and routing.
package httpserver

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"channel-insights-service/internal/app/service"
	"channel-insights-service/internal/transport/httpserver/handler"
	"channel-insights-service/internal/transport/httpserver/middleware"
	"channel-insights-service/internal/validator"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port      int
	BodyLimit int
	Debug     bool
}

// Server wraps Fiber app with handlers.
type Server struct {
	App    *fiber.App
	Logger *zap.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	cfg ServerConfig,
	analysisSvc *service.AnalysisService,
	selectionSvc *service.SelectionService,
	refreshSvc *service.RefreshService,
	db *gorm.DB,
	rdb *redis.Client,
	v *validator.Validator,
	logger *zap.Logger,
) *Server {
	engine := html.New("./web/templates", ".html")
	if cfg.Debug {
		engine.Reload(true)
	}

	app := fiber.New(fiber.Config{
		AppName:      "channel-insights-service",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler(logger),
		Views:        engine,
	})

	// Health probes must answer even when the rest of the chain is busy.
	app.Use(middleware.NewHealthCheck(db, rdb))

	app.Use(requestid.New())
	app.Use(middleware.Recover(logger))
	app.Use(middleware.Logger(logger))
	app.Use(cors.New())
	app.Use(compress.New())

	app.Static("/static", "./web/static")

	analysisHandler := handler.NewAnalysisHandler(analysisSvc, v, logger)
	selectionHandler := handler.NewSelectionHandler(selectionSvc, v, logger)
	adminHandler := handler.NewAdminHandler(refreshSvc, logger)
	dashboardHandler := handler.NewDashboardHandler(analysisSvc, logger)

	registerRoutes(app, analysisHandler, selectionHandler, adminHandler, dashboardHandler)

	return &Server{
		App:    app,
		Logger: logger,
	}
}

// registerRoutes sets up all API routes.
func registerRoutes(
	app *fiber.App,
	analysisHandler *handler.AnalysisHandler,
	selectionHandler *handler.SelectionHandler,
	adminHandler *handler.AdminHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	app.Get("/dashboard", dashboardHandler.Render)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	v1 := app.Group("/api/v1")

	channels := v1.Group("/channels")
	channels.Get("/search", analysisHandler.Search)
	channels.Get("/:id/analysis", analysisHandler.Analyze)

	v1.Post("/compare", analysisHandler.Compare)
	v1.Get("/rankings", analysisHandler.Rankings)

	selections := v1.Group("/selections")
	selections.Get("/:key", selectionHandler.Get)
	selections.Put("/:key", selectionHandler.Put)

	admin := v1.Group("/admin")
	admin.Post("/refresh", adminHandler.RefreshAll)
	admin.Post("/refresh/:id", adminHandler.RefreshChannel)
}

// errorHandler returns a custom error handler that logs based on HTTP status code.
// 404s are logged at DEBUG level (expected client behavior), 4xx at WARN, 5xx at ERROR.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		switch {
		case code == fiber.StatusNotFound:
			logger.Debug("resource not found",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
			)
		case code >= 500:
			logger.Error("server error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		case code >= 400:
			logger.Warn("client error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		default:
			logger.Error("unhandled error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "UNHANDLED_ERROR",
		})
	}
}

// Start starts the HTTP server.
func (s *Server) Start(port int) error {
	s.Logger.Info("starting HTTP server", zap.Int("port", port))

	return s.App.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	s.Logger.Info("shutting down HTTP server")

	return s.App.Shutdown()
}
