package domain

import "math"

// Reference ceilings for linear sub-score scaling. A metric at or above
// its ceiling scores 100; below it scores proportionally. These are tuned
// constants, not derived values.
const (
	subscriberCeiling     = 1_000_000
	avgViewsCeiling       = 500_000
	videoCountCeiling     = 1_000
	engagementRateCeiling = 0.05

	// defaultCadenceDays substitutes for the cadence input when fewer
	// than two videos exist.
	defaultCadenceDays = 30

	// cadencePenaltyPerDay drives the activity sub-score:
	// max(0, 100 - cadence*3.3). A daily uploader scores ~97, a
	// monthly one ~1.
	cadencePenaltyPerDay = 3.3
)

// Composite score weights. Must sum to 1.0.
const (
	weightScale       = 0.30
	weightPerformance = 0.30
	weightGrowth      = 0.20
	weightEngagement  = 0.10
	weightActivity    = 0.10
)

// Radar holds the five normalized sub-scores used for visual channel
// comparison. Every value is in [0, 100].
type Radar struct {
	Scale       float64 `json:"scale"`       // subscriber base
	Performance float64 `json:"performance"` // average recent views
	Volume      float64 `json:"volume"`      // lifetime video count
	Engagement  float64 `json:"engagement"`  // like-to-view rate
	Growth      float64 `json:"growth"`      // centered growth score
}

// Scorecard is the single composite ranking score with its weighted
// breakdown. Total and every breakdown entry are in [0, 100].
type Scorecard struct {
	Total     int            `json:"total"`
	Breakdown map[string]int `json:"breakdown"`
}

// Breakdown keys, stable for downstream renderers.
const (
	ScoreKeyScale       = "scale"
	ScoreKeyPerformance = "performance"
	ScoreKeyGrowth      = "growth"
	ScoreKeyEngagement  = "engagement"
	ScoreKeyActivity    = "activity"
)

// RadarScores maps metrics onto the five radar sub-scores using linear
// ceiling scaling. It never fails; out-of-range inputs are clamped.
func RadarScores(m *Metrics) Radar {
	return Radar{
		Scale:       ceilingScore(float64(m.Subscribers), subscriberCeiling),
		Performance: ceilingScore(float64(m.AvgViews), avgViewsCeiling),
		Volume:      ceilingScore(float64(m.VideoCount), videoCountCeiling),
		Engagement:  ceilingScore(m.EngagementRate, engagementRateCeiling),
		Growth:      centeredScore(m.GrowthRate),
	}
}

// ChannelScore computes the weighted composite score. The activity
// sub-score is derived from upload cadence rather than the radar set;
// a channel with fewer than two videos is scored as if it uploaded every
// 30 days instead of failing.
func ChannelScore(m *Metrics) Scorecard {
	scale := ceilingScore(float64(m.Subscribers), subscriberCeiling)
	performance := ceilingScore(float64(m.AvgViews), avgViewsCeiling)
	growth := centeredScore(m.GrowthRate)
	engagement := ceilingScore(m.EngagementRate, engagementRateCeiling)
	activity := activityScore(m)

	total := scale*weightScale +
		performance*weightPerformance +
		growth*weightGrowth +
		engagement*weightEngagement +
		activity*weightActivity

	return Scorecard{
		Total: int(math.Round(total)),
		Breakdown: map[string]int{
			ScoreKeyScale:       int(math.Round(scale)),
			ScoreKeyPerformance: int(math.Round(performance)),
			ScoreKeyGrowth:      int(math.Round(growth)),
			ScoreKeyEngagement:  int(math.Round(engagement)),
			ScoreKeyActivity:    int(math.Round(activity)),
		},
	}
}

// ceilingScore computes min(value/ceiling*100, 100), clamped at 0.
func ceilingScore(value, ceiling float64) float64 {
	if value <= 0 {
		return 0
	}

	score := value / ceiling * 100
	if score > 100 {
		return 100
	}

	return score
}

// centeredScore maps a signed growth percentage onto [0, 100] around a
// neutral 50: 0% growth scores 50, +50% scores 100, -50% or worse scores 0.
func centeredScore(growthPercent float64) float64 {
	score := 50 + growthPercent
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}

	return score
}

func activityScore(m *Metrics) float64 {
	cadence := m.UploadFrequencyDays
	if len(m.Videos) < 2 {
		cadence = defaultCadenceDays
	}

	score := 100 - cadence*cadencePenaltyPerDay
	if score < 0 {
		return 0
	}

	return score
}
