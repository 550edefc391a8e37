// Package main is the entry point for the channel-insights-service API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"channel-insights-service/internal/app/service"
	"channel-insights-service/internal/config"
	"channel-insights-service/internal/domain"
	"channel-insights-service/internal/infra/postgres"
	"channel-insights-service/internal/infra/postgres/migrations"
	rediscache "channel-insights-service/internal/infra/redis"
	"channel-insights-service/internal/infra/youtube"
	"channel-insights-service/internal/job"
	"channel-insights-service/internal/logger"
	"channel-insights-service/internal/transport/httpserver"
	"channel-insights-service/internal/validator"
	"channel-insights-service/pkg/locker"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			Output: cfg.Logger.Output,
		},
		logger.SentryConfig{
			Enabled:     cfg.Sentry.Enabled,
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			SampleRate:  cfg.Sentry.SampleRate,
		},
	)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting channel-insights-service",
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// Connect to database
	db, err := postgres.NewConnection(
		postgres.Config{
			Host:         cfg.Database.Host,
			Port:         cfg.Database.Port,
			Name:         cfg.Database.Name,
			User:         cfg.Database.User,
			Password:     cfg.Database.Password,
			SSLMode:      cfg.Database.SSLMode,
			MaxOpenConns: cfg.Database.MaxOpenConns,
			MaxIdleConns: cfg.Database.MaxIdleConns,
			MaxLifetime:  cfg.Database.MaxLifetime,
		},
		log.Logger,
	)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = postgres.Close(db) }()

	// Run migrations
	if err := migrations.Run(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	log.Info("database migrations completed")

	// Create repository
	repo := postgres.NewRepository(db)

	// Create YouTube Data API client
	ytClient := youtube.New(
		youtube.ClientConfig{
			BaseURL: cfg.YouTube.BaseURL,
			APIKey:  cfg.YouTube.APIKey,
			Timeout: cfg.YouTube.Timeout,
			Retry: youtube.RetryConfig{
				MaxAttempts: cfg.YouTube.Retry.MaxAttempts,
				WaitTime:    cfg.YouTube.Retry.WaitTime,
				MaxWaitTime: cfg.YouTube.Retry.MaxWaitTime,
			},
			CB: youtube.CBConfig{
				MaxRequests:  cfg.YouTube.CB.MaxRequests,
				Interval:     cfg.YouTube.CB.Interval,
				Timeout:      cfg.YouTube.CB.Timeout,
				FailureRatio: cfg.YouTube.CB.FailureRatio,
			},
		},
		log.Logger,
	)

	// Connect to Redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Ping Redis to verify connection
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()
	log.Info("connected to Redis",
		zap.String("host", cfg.Redis.Host),
		zap.Int("port", cfg.Redis.Port),
	)

	// Create cache implementation (optional, based on config)
	var cache domain.Cache
	if cfg.Cache.Enabled {
		cache = rediscache.NewCache(redisClient, log.Logger, cfg.Cache.KeyPrefix)
		log.Info("cache enabled",
			zap.Duration("analysis_ttl", cfg.Cache.AnalysisTTL),
			zap.String("key_prefix", cfg.Cache.KeyPrefix),
		)
	} else {
		log.Info("cache disabled")
	}

	// Selections are kept in Redis regardless of the cache flag.
	selectionStore := rediscache.NewSelectionStore(redisClient, log.Logger, cfg.Cache.KeyPrefix)

	// Create services
	analysisSvc := service.NewAnalysisService(
		ytClient,
		repo,
		cache,
		cfg.Cache.AnalysisTTL,
		cfg.YouTube.MaxVideos,
		log.Logger,
	)
	selectionSvc := service.NewSelectionService(selectionStore, log.Logger)
	refreshSvc := service.NewRefreshService(analysisSvc, repo, cfg.Refresh.Workers, log.Logger)

	// Create distributed locker
	distLocker := locker.NewRedisLocker(redisClient, log.Logger)

	// Create validator
	v := validator.New()

	// Create HTTP server
	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Port:      cfg.App.Port,
			BodyLimit: 1024 * 1024, // 1MB
			Debug:     cfg.App.Debug,
		},
		analysisSvc,
		selectionSvc,
		refreshSvc,
		db,
		redisClient,
		v,
		log.Logger,
	)

	// Start refresh scheduler with distributed locking
	scheduler := job.NewRefreshScheduler(
		refreshSvc,
		job.RefreshConfig{
			Interval:  cfg.Refresh.Interval,
			Timeout:   cfg.Refresh.Timeout,
			OnStartup: cfg.Refresh.OnStartup,
		},
		log.Logger,
		distLocker,
	)
	scheduler.Start(cfg.Refresh.OnStartup)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Info("shutdown signal received")

		// Stop scheduler
		scheduler.Stop()

		// Shutdown server with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.App.ShutdownWithContext(ctx); err != nil {
			log.Error("server shutdown error", zap.Error(err))
		}
	}()

	// Start server
	if err := server.Start(cfg.App.Port); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
