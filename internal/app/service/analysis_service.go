// Package service provides application use cases.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"channel-insights-service/internal/domain"
)

// MaxCompareChannels bounds a single comparison request.
const MaxCompareChannels = 5

// AnalysisService orchestrates channel analysis: fetch from the source,
// run the analytics engine, cache and persist the result.
type AnalysisService struct {
	source    domain.ChannelSource
	repo      domain.SnapshotRepository
	cache     domain.Cache
	cacheTTL  time.Duration
	maxVideos int
	logger    *zap.Logger
}

// NewAnalysisService creates a new AnalysisService. cache may be nil to
// disable caching.
func NewAnalysisService(
	source domain.ChannelSource,
	repo domain.SnapshotRepository,
	cache domain.Cache,
	cacheTTL time.Duration,
	maxVideos int,
	logger *zap.Logger,
) *AnalysisService {
	return &AnalysisService{
		source:    source,
		repo:      repo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		maxVideos: maxVideos,
		logger:    logger,
	}
}

// SearchChannel looks up a channel by free-text query.
func (s *AnalysisService) SearchChannel(ctx context.Context, query string) (*domain.ChannelRef, error) {
	ref, err := s.source.SearchChannel(ctx, query)
	if err != nil {
		s.logger.Error("channel search failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	return ref, nil
}

// Analyze produces the full analysis for one channel. Results are served
// from cache when fresh; otherwise the profile and recent uploads are
// fetched and the engine runs from scratch.
func (s *AnalysisService) Analyze(ctx context.Context, channelID string) (*domain.ChannelAnalysis, error) {
	if cached := s.cachedAnalysis(ctx, channelID); cached != nil {
		return cached, nil
	}

	return s.Reanalyze(ctx, channelID)
}

// Reanalyze runs a fresh analysis unconditionally, bypassing any cached
// result and replacing it. Used by the background refresh job.
func (s *AnalysisService) Reanalyze(ctx context.Context, channelID string) (*domain.ChannelAnalysis, error) {
	profile, err := s.source.FetchChannel(ctx, channelID)
	if err != nil {
		s.logger.Error("channel fetch failed", zap.String("channel_id", channelID), zap.Error(err))
		return nil, fmt.Errorf("fetching channel %s: %w", channelID, err)
	}
	if profile == nil {
		return nil, nil // Channel not found
	}

	videos, err := s.source.FetchRecentVideos(ctx, profile.UploadsPlaylistID, s.maxVideos)
	if err != nil {
		s.logger.Error("video fetch failed", zap.String("channel_id", channelID), zap.Error(err))
		return nil, fmt.Errorf("fetching videos for %s: %w", channelID, err)
	}

	analysis := domain.Analyze(profile, videos)

	s.logger.Debug("channel analyzed",
		zap.String("channel_id", channelID),
		zap.Int("videos", len(videos)),
		zap.Int("score", analysis.Score.Total),
	)

	// Persistence and caching are best-effort: a storage outage must not
	// fail an otherwise successful analysis.
	snapshot := domain.NewSnapshot(analysis, time.Now().UTC())
	if err := s.repo.Upsert(ctx, snapshot); err != nil {
		s.logger.Warn("snapshot upsert failed",
			zap.String("channel_id", channelID),
			zap.Error(err),
		)
	}
	s.storeInCache(ctx, channelID, analysis)

	return analysis, nil
}

// CompareEntry is one channel's outcome within a comparison.
type CompareEntry struct {
	ChannelID string
	Rank      int
	Analysis  *domain.ChannelAnalysis
	Duration  time.Duration
	Error     error
}

// Compare analyzes up to MaxCompareChannels channels concurrently and
// ranks the successful results by composite score descending. Partial
// failures are allowed: failed channels keep their Error and sort last
// with Rank 0.
func (s *AnalysisService) Compare(ctx context.Context, channelIDs []string) ([]CompareEntry, error) {
	if len(channelIDs) == 0 {
		return nil, nil
	}
	if len(channelIDs) > MaxCompareChannels {
		return nil, fmt.Errorf("at most %d channels can be compared, got %d",
			MaxCompareChannels, len(channelIDs))
	}

	entries := make([]CompareEntry, len(channelIDs))
	var wg sync.WaitGroup

	for i, id := range channelIDs {
		wg.Add(1)
		go func(idx int, channelID string) {
			defer wg.Done()

			start := time.Now()
			analysis, err := s.Analyze(ctx, channelID)
			if err == nil && analysis == nil {
				err = fmt.Errorf("channel %s not found", channelID)
			}

			entries[idx] = CompareEntry{
				ChannelID: channelID,
				Analysis:  analysis,
				Duration:  time.Since(start),
				Error:     err,
			}
		}(i, id)
	}

	wg.Wait()

	sort.SliceStable(entries, func(i, j int) bool {
		switch {
		case entries[i].Error != nil:
			return false
		case entries[j].Error != nil:
			return true
		default:
			return entries[i].Analysis.Score.Total > entries[j].Analysis.Score.Total
		}
	})

	failed := 0
	for i := range entries {
		if entries[i].Error != nil {
			failed++
			continue
		}
		entries[i].Rank = i + 1
	}

	s.logger.Info("comparison completed",
		zap.Int("channels", len(channelIDs)),
		zap.Int("failed", failed),
	)

	return entries, nil
}

// Rankings returns the stored snapshot ranking.
func (s *AnalysisService) Rankings(ctx context.Context, limit int) ([]*domain.Snapshot, error) {
	return s.repo.Rankings(ctx, limit)
}

// Count returns the number of channels with stored snapshots.
func (s *AnalysisService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *AnalysisService) cachedAnalysis(ctx context.Context, channelID string) *domain.ChannelAnalysis {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Get(ctx, analysisCacheKey(channelID))
	if err != nil || data == nil {
		return nil
	}

	var analysis domain.ChannelAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		s.logger.Warn("corrupt cached analysis dropped",
			zap.String("channel_id", channelID),
			zap.Error(err),
		)
		_ = s.cache.Delete(ctx, analysisCacheKey(channelID))

		return nil
	}

	s.logger.Debug("analysis cache hit", zap.String("channel_id", channelID))

	return &analysis
}

func (s *AnalysisService) storeInCache(ctx context.Context, channelID string, analysis *domain.ChannelAnalysis) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(analysis)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, analysisCacheKey(channelID), data, s.cacheTTL); err != nil {
		s.logger.Warn("analysis cache write failed",
			zap.String("channel_id", channelID),
			zap.Error(err),
		)
	}
}

func analysisCacheKey(channelID string) string {
	return "analysis:" + channelID
}
