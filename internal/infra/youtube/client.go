// Package youtube implements domain.ChannelSource over the YouTube Data API v3.
package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"channel-insights-service/internal/domain"
)

// ClientConfig holds configuration for the API client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Retry   RetryConfig
	CB      CBConfig
}

// RetryConfig holds retry configuration.
type RetryConfig struct {
	MaxAttempts int
	WaitTime    time.Duration
	MaxWaitTime time.Duration
}

// CBConfig holds circuit breaker configuration.
type CBConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
}

// Client calls the YouTube Data API. All requests share one circuit
// breaker since they hit the same upstream and quota.
type Client struct {
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// New creates a new YouTube Data API client.
func New(cfg ClientConfig, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetQueryParam("key", cfg.APIKey).
		SetRetryCount(cfg.Retry.MaxAttempts).
		SetRetryWaitTime(cfg.Retry.WaitTime).
		SetRetryMaxWaitTime(cfg.Retry.MaxWaitTime).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Retry on network errors or 5xx status codes
			if err != nil {
				return true
			}

			return r.StatusCode() >= 500
		})

	settings := gobreaker.Settings{
		Name:        "youtube",
		MaxRequests: cfg.CB.MaxRequests,
		Interval:    cfg.CB.Interval,
		Timeout:     cfg.CB.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= 3 && failureRatio >= cfg.CB.FailureRatio
		},
	}

	return &Client{
		client: client,
		cb:     gobreaker.NewCircuitBreaker[*resty.Response](settings),
		logger: logger,
	}
}

// SearchChannel finds the best channel match for a free-text query.
// Returns nil when nothing matches.
func (c *Client) SearchChannel(ctx context.Context, query string) (*domain.ChannelRef, error) {
	var result searchResponse
	err := c.get(ctx, "/search", map[string]string{
		"part":       "snippet",
		"q":          query,
		"type":       "channel",
		"maxResults": "1",
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("searching channel %q: %w", query, err)
	}

	if len(result.Items) == 0 {
		return nil, nil
	}

	item := result.Items[0]

	return &domain.ChannelRef{
		ID:        item.ID.ChannelID,
		Title:     item.Snippet.Title,
		Thumbnail: item.Snippet.thumbnailURL(),
	}, nil
}

// FetchChannel retrieves the channel profile. Returns nil when the
// channel does not exist.
func (c *Client) FetchChannel(ctx context.Context, channelID string) (*domain.ChannelProfile, error) {
	var result channelsResponse
	err := c.get(ctx, "/channels", map[string]string{
		"part": "snippet,statistics,contentDetails",
		"id":   channelID,
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("fetching channel %s: %w", channelID, err)
	}

	if len(result.Items) == 0 {
		return nil, nil
	}

	return result.Items[0].ToDomain(), nil
}

// FetchRecentVideos lists the newest uploads from the channel's uploads
// playlist, newest first. Listing is a two-step call: playlistItems
// yields the video IDs, videos.list yields statistics and durations.
func (c *Client) FetchRecentVideos(ctx context.Context, playlistID string, maxResults int) ([]domain.Video, error) {
	var playlist playlistItemsResponse
	err := c.get(ctx, "/playlistItems", map[string]string{
		"part":       "contentDetails",
		"playlistId": playlistID,
		"maxResults": fmt.Sprintf("%d", maxResults),
	}, &playlist)
	if err != nil {
		return nil, fmt.Errorf("listing playlist %s: %w", playlistID, err)
	}

	if len(playlist.Items) == 0 {
		return []domain.Video{}, nil
	}

	ids := make([]string, 0, len(playlist.Items))
	for _, item := range playlist.Items {
		ids = append(ids, item.ContentDetails.VideoID)
	}

	var videos videosResponse
	err = c.get(ctx, "/videos", map[string]string{
		"part": "snippet,statistics,contentDetails",
		"id":   strings.Join(ids, ","),
	}, &videos)
	if err != nil {
		return nil, fmt.Errorf("fetching video details: %w", err)
	}

	out := make([]domain.Video, 0, len(videos.Items))
	for _, item := range videos.Items {
		out = append(out, item.ToDomain())
	}

	c.logger.Debug("videos fetched",
		zap.String("playlist_id", playlistID),
		zap.Int("count", len(out)),
	)

	return out, nil
}

// HealthCheck verifies the API is reachable and the key is accepted.
func (c *Client) HealthCheck(ctx context.Context) error {
	var result channelsResponse

	return c.get(ctx, "/channels", map[string]string{
		"part": "id",
		"id":   "UC_x5XG1OV2P6uZZ5FSM9Ttw",
	}, &result)
}

// get performs one API call through the circuit breaker, decoding the
// body into result.
func (c *Client) get(ctx context.Context, path string, params map[string]string, result interface{}) error {
	_, err := c.cb.Execute(func() (*resty.Response, error) {
		r, err := c.client.R().
			SetContext(ctx).
			SetQueryParams(params).
			SetResult(result).
			Get(path)
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, fmt.Errorf("youtube api returned status %d", r.StatusCode())
		}

		return r, nil
	})

	if err != nil {
		c.logger.Warn("youtube api call failed",
			zap.String("path", path),
			zap.Error(err),
			zap.String("state", c.cb.State().String()),
		)
	}

	return err
}
