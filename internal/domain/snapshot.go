package domain

import "time"

// Snapshot is the persisted summary of one channel analysis: the derived
// metrics, the composite score breakdown and the top keywords, flattened
// for storage and ranking queries. The raw video batch is not persisted;
// a fresh analysis always refetches it.
type Snapshot struct {
	ChannelID    string `json:"channel_id"`
	ChannelTitle string `json:"channel_title"`
	Thumbnail    string `json:"thumbnail"`

	Subscribers int64 `json:"subscribers"`
	TotalViews  int64 `json:"total_views"`
	VideoCount  int64 `json:"video_count"`
	AvgViews    int64 `json:"avg_views"`

	Engagement          float64 `json:"engagement"`
	EngagementRate      float64 `json:"engagement_rate"`
	GrowthRate          float64 `json:"growth_rate"`
	ShortFormCount      int     `json:"short_form_count"`
	LongFormCount       int     `json:"long_form_count"`
	UploadFrequencyDays float64 `json:"upload_frequency_days"`

	ScoreTotal       int `json:"score_total"`
	ScoreScale       int `json:"score_scale"`
	ScorePerformance int `json:"score_performance"`
	ScoreGrowth      int `json:"score_growth"`
	ScoreEngagement  int `json:"score_engagement"`
	ScoreActivity    int `json:"score_activity"`

	Keywords []string `json:"keywords,omitempty"`

	AnalyzedAt time.Time `json:"analyzed_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewSnapshot flattens a ChannelAnalysis into its persisted form.
func NewSnapshot(a *ChannelAnalysis, analyzedAt time.Time) *Snapshot {
	m := a.Metrics

	keywords := make([]string, len(a.Keywords))
	for i, k := range a.Keywords {
		keywords[i] = k.Word
	}

	return &Snapshot{
		ChannelID:           m.ChannelID,
		ChannelTitle:        m.ChannelTitle,
		Thumbnail:           m.Thumbnail,
		Subscribers:         m.Subscribers,
		TotalViews:          m.TotalViews,
		VideoCount:          m.VideoCount,
		AvgViews:            m.AvgViews,
		Engagement:          m.Engagement,
		EngagementRate:      m.EngagementRate,
		GrowthRate:          m.GrowthRate,
		ShortFormCount:      m.ShortFormCount,
		LongFormCount:       m.LongFormCount,
		UploadFrequencyDays: m.UploadFrequencyDays,
		ScoreTotal:          a.Score.Total,
		ScoreScale:          a.Score.Breakdown[ScoreKeyScale],
		ScorePerformance:    a.Score.Breakdown[ScoreKeyPerformance],
		ScoreGrowth:         a.Score.Breakdown[ScoreKeyGrowth],
		ScoreEngagement:     a.Score.Breakdown[ScoreKeyEngagement],
		ScoreActivity:       a.Score.Breakdown[ScoreKeyActivity],
		Keywords:            keywords,
		AnalyzedAt:          analyzedAt,
	}
}
