package domain

import (
	"math"
	"time"
)

// Recency window sizes over a newest-first batch.
const (
	recentViewsWindow = 30 // average recent views, best video
	growthWindow      = 5  // growth: first 5 vs videos ranked 6-10
)

// Metrics holds the derived per-channel performance metrics.
// It is a pure function of (profile, videos) and is recomputed from
// scratch whenever the batch changes; never mutated in place.
type Metrics struct {
	// Identity carried through from the profile
	ChannelID    string `json:"channel_id"`
	ChannelTitle string `json:"channel_title"`
	Thumbnail    string `json:"thumbnail"`

	Subscribers int64 `json:"subscribers"`
	TotalViews  int64 `json:"total_views"`
	VideoCount  int64 `json:"video_count"`

	// AvgViews is the mean view count over the most recent 30 videos,
	// rounded to whole views.
	AvgViews int64 `json:"avg_views"`

	// Engagement is AvgViews / Subscribers (legacy ratio), 2 decimals.
	Engagement float64 `json:"engagement"`

	// EngagementRate is the mean likes/views ratio over videos with at
	// least one view. Zero-view videos are skipped entirely.
	EngagementRate float64 `json:"engagement_rate"`

	// GrowthRate compares the newest 5 videos against the 5 before them,
	// as a signed percentage. 100 is the sentinel for "emerged from
	// nothing" (past window had zero views, recent did not).
	GrowthRate float64 `json:"growth_rate"`

	ShortFormCount int     `json:"short_form_count"`
	LongFormCount  int     `json:"long_form_count"`
	ShortFormRatio float64 `json:"short_form_ratio"`
	LongFormRatio  float64 `json:"long_form_ratio"`

	// UploadFrequencyDays is the mean interval between uploads in days:
	// whole-day batch span (ceiling-rounded) over (n-1). 0 when n < 2.
	UploadFrequencyDays float64 `json:"upload_frequency_days"`

	// JoinedAt is the channel creation date formatted for display.
	JoinedAt string `json:"joined_at"`

	// References to the raw inputs for downstream consumers.
	Profile *ChannelProfile `json:"-"`
	Videos  []Video         `json:"-"`
}

// ComputeMetrics derives all channel metrics from a profile and its
// newest-first video batch. Every division-by-zero path is guarded and
// yields 0; the function never fails.
func ComputeMetrics(profile *ChannelProfile, videos []Video) *Metrics {
	m := &Metrics{
		ChannelID:    profile.ID,
		ChannelTitle: profile.Title,
		Thumbnail:    profile.Thumbnail,
		Subscribers:  profile.Subscribers,
		TotalViews:   profile.TotalViews,
		VideoCount:   profile.VideoCount,
		JoinedAt:     formatJoinDate(profile.PublishedAt),
		Profile:      profile,
		Videos:       videos,
	}

	avgViews := meanViews(firstN(videos, recentViewsWindow))
	m.AvgViews = int64(math.Round(avgViews))

	if profile.Subscribers > 0 {
		m.Engagement = roundTo(avgViews/float64(profile.Subscribers), 2)
	}

	m.EngagementRate = likeRate(videos)
	m.GrowthRate = growthRate(videos)

	for i := range videos {
		if videos[i].IsShortForm() {
			m.ShortFormCount++
		} else {
			m.LongFormCount++
		}
	}
	if len(videos) > 0 {
		m.ShortFormRatio = roundTo(float64(m.ShortFormCount)/float64(len(videos))*100, 1)
		m.LongFormRatio = roundTo(float64(m.LongFormCount)/float64(len(videos))*100, 1)
	}

	m.UploadFrequencyDays = uploadFrequency(videos)

	return m
}

// meanViews returns the mean view count of the given videos, 0 for empty.
func meanViews(videos []Video) float64 {
	if len(videos) == 0 {
		return 0
	}

	var sum int64
	for i := range videos {
		sum += videos[i].Views
	}

	return float64(sum) / float64(len(videos))
}

// likeRate averages likes/views over videos that have views. Videos with
// zero views do not count as zero engagement; they are excluded from
// numerator and denominator alike.
func likeRate(videos []Video) float64 {
	var sum float64
	var counted int

	for i := range videos {
		if videos[i].Views > 0 {
			sum += float64(videos[i].Likes) / float64(videos[i].Views)
			counted++
		}
	}

	if counted == 0 {
		return 0
	}

	return sum / float64(counted)
}

// growthRate compares mean views of the newest 5 videos against the 5
// before them. A past window with zero views but a non-zero recent window
// is reported as exactly 100 (capped sentinel). An empty window on either
// side yields 0.
func growthRate(videos []Video) float64 {
	recent := firstN(videos, growthWindow)
	var past []Video
	if len(videos) > growthWindow {
		past = videos[growthWindow:min(len(videos), 2*growthWindow)]
	}

	if len(recent) == 0 || len(past) == 0 {
		return 0
	}

	recentAvg := meanViews(recent)
	pastAvg := meanViews(past)

	switch {
	case pastAvg > 0:
		return roundTo((recentAvg-pastAvg)/pastAvg*100, 1)
	case recentAvg > 0:
		return 100
	default:
		return 0
	}
}

// uploadFrequency returns the mean days between uploads across the whole
// batch span. This is a mean, not a median: one long gap skews it upward.
func uploadFrequency(videos []Video) float64 {
	if len(videos) < 2 {
		return 0
	}

	newest := videos[0].PublishedAt
	oldest := videos[len(videos)-1].PublishedAt
	span := newest.Sub(oldest)
	if span < 0 {
		span = -span
	}

	days := math.Ceil(span.Hours() / 24)

	return roundTo(days/float64(len(videos)-1), 1)
}

func firstN(videos []Video, n int) []Video {
	if len(videos) < n {
		return videos
	}

	return videos[:n]
}

func formatJoinDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format("2006. 1. 2.")
}

// roundTo rounds a value to the given number of decimal places.
func roundTo(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))

	return math.Round(value*shift) / shift
}
