// Package job provides background job schedulers.
package job

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"channel-insights-service/internal/app/service"
	"channel-insights-service/pkg/locker"
)

// RefreshScheduler periodically re-analyzes tracked channels, with
// distributed locking so only one instance runs a refresh at a time.
type RefreshScheduler struct {
	refreshService *service.RefreshService
	interval       time.Duration
	timeout        time.Duration
	logger         *zap.Logger
	locker         locker.DistributedLocker

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// RefreshConfig holds refresh scheduler configuration.
type RefreshConfig struct {
	Interval  time.Duration
	Timeout   time.Duration
	OnStartup bool
}

// NewRefreshScheduler creates a new RefreshScheduler.
func NewRefreshScheduler(
	refreshSvc *service.RefreshService,
	cfg RefreshConfig,
	logger *zap.Logger,
	locker locker.DistributedLocker,
) *RefreshScheduler {
	return &RefreshScheduler{
		refreshService: refreshSvc,
		interval:       cfg.Interval,
		timeout:        cfg.Timeout,
		logger:         logger,
		locker:         locker,
	}
}

// Start begins the background refresh job.
func (s *RefreshScheduler) Start(runOnStartup bool) {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("starting refresh scheduler",
		zap.Duration("interval", s.interval),
		zap.Bool("run_on_startup", runOnStartup),
	)

	s.wg.Add(1)
	go s.run(runOnStartup)
}

// Stop gracefully stops the scheduler.
func (s *RefreshScheduler) Stop() {
	s.logger.Info("stopping refresh scheduler")
	s.cancel()
	s.wg.Wait()
	s.logger.Info("refresh scheduler stopped")
}

// run is the main loop of the scheduler.
func (s *RefreshScheduler) run(runOnStartup bool) {
	defer s.wg.Done()

	if runOnStartup {
		s.executeRefresh()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.executeRefresh()
		}
	}
}

// executeRefresh runs one refresh pass with distributed locking.
//
// Locking behavior:
//   - Lock TTL = interval duration (cooldown model, not timeout)
//   - Success: lock held for the full interval to prevent duplicate passes
//   - Failure: lock released immediately so another instance can retry
func (s *RefreshScheduler) executeRefresh() {
	const lockKey = "refresh:scheduler:lock"

	acquired, err := s.locker.Acquire(s.ctx, lockKey, s.interval)
	if err != nil {
		s.logger.Error("failed to acquire distributed lock", zap.Error(err))

		return
	}
	if !acquired {
		s.logger.Debug("another instance is running the refresh, skipping")

		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	results, err := s.refreshService.RefreshAll(ctx)
	if err != nil {
		// The tracked set could not even be listed. Release the lock so
		// another instance can retry before the cooldown elapses.
		if relErr := s.locker.Release(s.ctx, lockKey); relErr != nil {
			s.logger.Error("failed to release lock after refresh error", zap.Error(relErr))
		}
		s.logger.Error("refresh pass failed, lock released for retry", zap.Error(err))

		return
	}

	refreshed := 0
	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
		} else {
			refreshed++
		}
	}

	if failed > 0 {
		// Release the lock immediately so a retry can happen sooner
		if err := s.locker.Release(s.ctx, lockKey); err != nil {
			s.logger.Error("failed to release lock after refresh errors", zap.Error(err))
		}
		s.logger.Info("refresh completed with errors, lock released for retry",
			zap.Int("refreshed", refreshed),
			zap.Int("failed", failed),
		)
	} else {
		// Lock expires naturally after the interval (cooldown period)
		s.logger.Info("refresh completed, lock held for cooldown",
			zap.Int("refreshed", refreshed),
			zap.Duration("cooldown", s.interval),
		)
	}
}
