package dto

import (
	"time"

	"channel-insights-service/internal/app/service"
	"channel-insights-service/internal/domain"
)

// ChannelSummary carries the channel identity and its headline counters,
// with Korean-formatted display strings alongside the raw values.
type ChannelSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail,omitempty"`

	Subscribers        int64  `json:"subscribers"`
	SubscribersDisplay string `json:"subscribers_display"`
	TotalViews         int64  `json:"total_views"`
	TotalViewsDisplay  string `json:"total_views_display"`
	VideoCount         int64  `json:"video_count"`

	JoinedAt string `json:"joined_at,omitempty"`
}

// MetricsResponse holds the derived performance metrics.
type MetricsResponse struct {
	AvgViews        int64  `json:"avg_views"`
	AvgViewsDisplay string `json:"avg_views_display"`

	Engagement     float64 `json:"engagement"`
	EngagementRate float64 `json:"engagement_rate"`
	GrowthRate     float64 `json:"growth_rate"`

	ShortFormCount int     `json:"short_form_count"`
	LongFormCount  int     `json:"long_form_count"`
	ShortFormRatio float64 `json:"short_form_ratio"`
	LongFormRatio  float64 `json:"long_form_ratio"`

	UploadFrequencyDays float64 `json:"upload_frequency_days"`
}

// BestVideoResponse describes the best-performing recent upload.
type BestVideoResponse struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Thumbnail    string `json:"thumbnail,omitempty"`
	Views        int64  `json:"views"`
	ViewsDisplay string `json:"views_display"`
	Likes        int64  `json:"likes"`
	Duration     string `json:"duration"`
	PublishedAt  string `json:"published_at"`
}

// AnalysisResponse is the full analysis payload for one channel.
type AnalysisResponse struct {
	Channel       ChannelSummary        `json:"channel"`
	Metrics       MetricsResponse       `json:"metrics"`
	Radar         domain.Radar          `json:"radar"`
	Score         domain.Scorecard      `json:"score"`
	UploadPattern domain.UploadPattern  `json:"upload_pattern"`
	BestVideo     *BestVideoResponse    `json:"best_video,omitempty"`
	Keywords      []domain.KeywordEntry `json:"keywords"`
}

// FromAnalysis converts a domain.ChannelAnalysis to AnalysisResponse.
func FromAnalysis(a *domain.ChannelAnalysis) AnalysisResponse {
	m := a.Metrics

	resp := AnalysisResponse{
		Channel: ChannelSummary{
			ID:                 m.ChannelID,
			Title:              m.ChannelTitle,
			Thumbnail:          m.Thumbnail,
			Subscribers:        m.Subscribers,
			SubscribersDisplay: domain.FormatCount(m.Subscribers),
			TotalViews:         m.TotalViews,
			TotalViewsDisplay:  domain.FormatCount(m.TotalViews),
			VideoCount:         m.VideoCount,
			JoinedAt:           m.JoinedAt,
		},
		Metrics: MetricsResponse{
			AvgViews:            m.AvgViews,
			AvgViewsDisplay:     domain.FormatCount(m.AvgViews),
			Engagement:          m.Engagement,
			EngagementRate:      m.EngagementRate,
			GrowthRate:          m.GrowthRate,
			ShortFormCount:      m.ShortFormCount,
			LongFormCount:       m.LongFormCount,
			ShortFormRatio:      m.ShortFormRatio,
			LongFormRatio:       m.LongFormRatio,
			UploadFrequencyDays: m.UploadFrequencyDays,
		},
		Radar:         a.Radar,
		Score:         a.Score,
		UploadPattern: a.UploadPattern,
		Keywords:      a.Keywords,
	}

	if a.BestVideo != nil {
		resp.BestVideo = &BestVideoResponse{
			VideoID:      a.BestVideo.VideoID,
			Title:        a.BestVideo.Title,
			Thumbnail:    a.BestVideo.Thumbnail,
			Views:        a.BestVideo.Views,
			ViewsDisplay: domain.FormatCount(a.BestVideo.Views),
			Likes:        a.BestVideo.Likes,
			Duration:     domain.FormatDuration(a.BestVideo.DurationSeconds),
			PublishedAt:  a.BestVideo.PublishedAt,
		}
	}

	return resp
}

// SearchResponse represents the channel search result.
type SearchResponse struct {
	Channel *ChannelRefResponse `json:"channel"`
}

// ChannelRefResponse is a lightweight channel reference.
type ChannelRefResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// FromChannelRef converts a domain.ChannelRef to its response form.
func FromChannelRef(ref *domain.ChannelRef) *ChannelRefResponse {
	if ref == nil {
		return nil
	}

	return &ChannelRefResponse{
		ID:        ref.ID,
		Title:     ref.Title,
		Thumbnail: ref.Thumbnail,
	}
}

// CompareEntryResponse is one channel's outcome within a comparison.
type CompareEntryResponse struct {
	ChannelID string            `json:"channel_id"`
	Rank      int               `json:"rank,omitempty"`
	Analysis  *AnalysisResponse `json:"analysis,omitempty"`
	Duration  string            `json:"duration"`
	Error     string            `json:"error,omitempty"`
}

// CompareResponse represents the comparison result.
type CompareResponse struct {
	Entries []CompareEntryResponse `json:"entries"`
}

// FromCompareEntries converts service.CompareEntry slice to CompareResponse.
func FromCompareEntries(entries []service.CompareEntry) CompareResponse {
	resp := CompareResponse{
		Entries: make([]CompareEntryResponse, len(entries)),
	}

	for i, e := range entries {
		entry := CompareEntryResponse{
			ChannelID: e.ChannelID,
			Rank:      e.Rank,
			Duration:  e.Duration.String(),
		}
		if e.Error != nil {
			entry.Error = e.Error.Error()
		}
		if e.Analysis != nil {
			analysis := FromAnalysis(e.Analysis)
			entry.Analysis = &analysis
		}

		resp.Entries[i] = entry
	}

	return resp
}

// RankingEntryResponse is one row of the stored ranking.
type RankingEntryResponse struct {
	Rank               int    `json:"rank"`
	ChannelID          string `json:"channel_id"`
	ChannelTitle       string `json:"channel_title"`
	Thumbnail          string `json:"thumbnail,omitempty"`
	Subscribers        int64  `json:"subscribers"`
	SubscribersDisplay string `json:"subscribers_display"`
	ScoreTotal         int    `json:"score_total"`
	AnalyzedAt         string `json:"analyzed_at"`
	AnalyzedAgo        string `json:"analyzed_ago"`
}

// RankingsResponse represents the ranking list.
type RankingsResponse struct {
	Rankings []RankingEntryResponse `json:"rankings"`
	Total    int64                  `json:"total"`
}

// FromSnapshots converts ranked snapshots to RankingsResponse.
func FromSnapshots(snapshots []*domain.Snapshot, total int64, now time.Time) RankingsResponse {
	resp := RankingsResponse{
		Rankings: make([]RankingEntryResponse, len(snapshots)),
		Total:    total,
	}

	for i, s := range snapshots {
		resp.Rankings[i] = RankingEntryResponse{
			Rank:               i + 1,
			ChannelID:          s.ChannelID,
			ChannelTitle:       s.ChannelTitle,
			Thumbnail:          s.Thumbnail,
			Subscribers:        s.Subscribers,
			SubscribersDisplay: domain.FormatCount(s.Subscribers),
			ScoreTotal:         s.ScoreTotal,
			AnalyzedAt:         s.AnalyzedAt.Format(time.RFC3339),
			AnalyzedAgo:        domain.FormatRelativeDate(s.AnalyzedAt, now),
		}
	}

	return resp
}

// SelectionResponse represents a saved channel selection.
type SelectionResponse struct {
	Channels []ChannelRefResponse `json:"channels"`
}

// FromSelection converts domain references to SelectionResponse.
func FromSelection(refs []domain.ChannelRef) SelectionResponse {
	resp := SelectionResponse{
		Channels: make([]ChannelRefResponse, len(refs)),
	}
	for i, ref := range refs {
		resp.Channels[i] = ChannelRefResponse{
			ID:        ref.ID,
			Title:     ref.Title,
			Thumbnail: ref.Thumbnail,
		}
	}

	return resp
}

// RefreshResultResponse represents the outcome for one refreshed channel.
type RefreshResultResponse struct {
	ChannelID string `json:"channel_id"`
	Score     int    `json:"score"`
	Duration  string `json:"duration"`
	Error     string `json:"error,omitempty"`
}

// RefreshResponse represents the response for a refresh operation.
type RefreshResponse struct {
	Results []RefreshResultResponse `json:"results"`
	Summary RefreshSummary          `json:"summary"`
}

// RefreshSummary holds the refresh outcome counters.
type RefreshSummary struct {
	Refreshed int `json:"refreshed"`
	Failed    int `json:"failed"`
}

// FromRefreshResults converts service.RefreshResult slice to RefreshResponse.
func FromRefreshResults(results []service.RefreshResult) RefreshResponse {
	resp := RefreshResponse{
		Results: make([]RefreshResultResponse, len(results)),
	}

	for i, r := range results {
		errMsg := ""
		if r.Error != nil {
			errMsg = r.Error.Error()
			resp.Summary.Failed++
		} else {
			resp.Summary.Refreshed++
		}

		resp.Results[i] = RefreshResultResponse{
			ChannelID: r.ChannelID,
			Score:     r.Score,
			Duration:  r.Duration.String(),
			Error:     errMsg,
		}
	}

	return resp
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}
