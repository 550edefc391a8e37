package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"channel-insights-service/internal/domain"
)

// defaultRefreshWorkers bounds the fan-out when no worker count is given.
const defaultRefreshWorkers = 4

// RefreshService re-analyzes every tracked channel so stored snapshots
// and rankings stay current.
type RefreshService struct {
	analysis *AnalysisService
	repo     domain.SnapshotRepository
	workers  int
	logger   *zap.Logger
}

// NewRefreshService creates a new RefreshService. workers caps how many
// channels are re-analyzed at once.
func NewRefreshService(analysis *AnalysisService, repo domain.SnapshotRepository, workers int, logger *zap.Logger) *RefreshService {
	if workers <= 0 {
		workers = defaultRefreshWorkers
	}

	return &RefreshService{
		analysis: analysis,
		repo:     repo,
		workers:  workers,
		logger:   logger,
	}
}

// RefreshResult holds the outcome for one channel.
type RefreshResult struct {
	ChannelID string
	Score     int
	Duration  time.Duration
	Error     error
}

// RefreshAll re-analyzes all tracked channels concurrently. Returns a
// result per channel; partial failures are allowed. The error is
// non-nil only when the tracked set itself could not be listed, so
// callers can tell a storage outage from an empty tracked set.
func (s *RefreshService) RefreshAll(ctx context.Context) ([]RefreshResult, error) {
	channelIDs, err := s.repo.ListTracked(ctx)
	if err != nil {
		s.logger.Error("listing tracked channels failed", zap.Error(err))
		return nil, fmt.Errorf("listing tracked channels: %w", err)
	}
	if len(channelIDs) == 0 {
		s.logger.Debug("no tracked channels to refresh")
		return nil, nil
	}

	s.logger.Info("starting refresh of tracked channels",
		zap.Int("channel_count", len(channelIDs)),
	)

	results := make([]RefreshResult, len(channelIDs))
	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup

	for i, id := range channelIDs {
		wg.Add(1)
		go func(idx int, channelID string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx] = s.refreshChannel(ctx, channelID)
		}(i, id)
	}

	wg.Wait()

	refreshed := 0
	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
		} else {
			refreshed++
		}
	}

	s.logger.Info("refresh completed",
		zap.Int("refreshed", refreshed),
		zap.Int("failed", failed),
	)

	return results, nil
}

// RefreshChannel re-analyzes a single tracked channel.
func (s *RefreshService) RefreshChannel(ctx context.Context, channelID string) (*RefreshResult, error) {
	result := s.refreshChannel(ctx, channelID)
	return &result, result.Error
}

func (s *RefreshService) refreshChannel(ctx context.Context, channelID string) RefreshResult {
	start := time.Now()
	result := RefreshResult{ChannelID: channelID}

	analysis, err := s.analysis.Reanalyze(ctx, channelID)
	result.Duration = time.Since(start)

	if err == nil && analysis == nil {
		// A tracked channel that disappears upstream counts as a failure.
		err = fmt.Errorf("channel %s not found", channelID)
	}
	if err != nil {
		result.Error = err
		s.logger.Warn("channel refresh failed",
			zap.String("channel_id", channelID),
			zap.Error(err),
		)

		return result
	}
	result.Score = analysis.Score.Total

	s.logger.Debug("channel refreshed",
		zap.String("channel_id", channelID),
		zap.Int("score", result.Score),
		zap.Duration("duration", result.Duration),
	)

	return result
}
