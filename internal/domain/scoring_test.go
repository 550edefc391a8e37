package domain

import "testing"

func TestRadarScores_CeilingScaling(t *testing.T) {
	m := &Metrics{
		Subscribers:    500_000, // half the 1M ceiling
		AvgViews:       500_000, // at the ceiling
		VideoCount:     2_000,   // above the ceiling
		EngagementRate: 0.025,   // half the 5% ceiling
		GrowthRate:     0,
	}

	radar := RadarScores(m)

	if radar.Scale != 50 {
		t.Errorf("Scale = %v, want 50", radar.Scale)
	}
	if radar.Performance != 100 {
		t.Errorf("Performance = %v, want 100", radar.Performance)
	}
	if radar.Volume != 100 {
		t.Errorf("Volume = %v, want 100 (clamped)", radar.Volume)
	}
	if radar.Engagement != 50 {
		t.Errorf("Engagement = %v, want 50", radar.Engagement)
	}
	if radar.Growth != 50 {
		t.Errorf("Growth = %v, want 50 for flat growth", radar.Growth)
	}
}

func TestRadarScores_ZeroMetrics(t *testing.T) {
	radar := RadarScores(&Metrics{})

	for name, score := range map[string]float64{
		"Scale":       radar.Scale,
		"Performance": radar.Performance,
		"Volume":      radar.Volume,
		"Engagement":  radar.Engagement,
	} {
		if score != 0 {
			t.Errorf("%s = %v, want 0", name, score)
		}
	}

	// Zero growth still centers at 50.
	if radar.Growth != 50 {
		t.Errorf("Growth = %v, want 50", radar.Growth)
	}
}

func TestCenteredScore(t *testing.T) {
	tests := []struct {
		name     string
		growth   float64
		expected float64
	}{
		{"flat", 0, 50},
		{"plus fifty", 50, 100},
		{"above cap", 300, 100},
		{"minus fifty", -50, 0},
		{"below floor", -200, 0},
		{"mild growth", 10, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := centeredScore(tt.growth)
			if got != tt.expected {
				t.Errorf("centeredScore(%v) = %v, want %v", tt.growth, got, tt.expected)
			}
		})
	}
}

func TestChannelScore_MaxedChannel(t *testing.T) {
	m := &Metrics{
		Subscribers:         2_000_000,
		AvgViews:            1_000_000,
		EngagementRate:      0.1,
		GrowthRate:          80,
		UploadFrequencyDays: 0, // uploads multiple times a day
		Videos:              newestFirst(1, 1, 1),
	}

	card := ChannelScore(m)

	if card.Total != 100 {
		t.Errorf("Total = %d, want 100", card.Total)
	}
	for _, key := range []string{
		ScoreKeyScale, ScoreKeyPerformance, ScoreKeyGrowth,
		ScoreKeyEngagement, ScoreKeyActivity,
	} {
		if card.Breakdown[key] != 100 {
			t.Errorf("Breakdown[%s] = %d, want 100", key, card.Breakdown[key])
		}
	}
}

func TestChannelScore_BoundsAlwaysHold(t *testing.T) {
	metrics := []*Metrics{
		{},
		{Subscribers: -5, AvgViews: -100, GrowthRate: -9999},
		{Subscribers: 1 << 40, AvgViews: 1 << 40, EngagementRate: 99, GrowthRate: 1e9, Videos: newestFirst(1, 2)},
		{UploadFrequencyDays: 365, Videos: newestFirst(1, 2)},
	}

	for i, m := range metrics {
		card := ChannelScore(m)
		if card.Total < 0 || card.Total > 100 {
			t.Errorf("metrics[%d]: Total = %d out of [0,100]", i, card.Total)
		}
		for key, sub := range card.Breakdown {
			if sub < 0 || sub > 100 {
				t.Errorf("metrics[%d]: Breakdown[%s] = %d out of [0,100]", i, key, sub)
			}
		}
	}
}

func TestChannelScore_ActivityDefaultsWithoutCadence(t *testing.T) {
	// A single-video channel has no cadence; the activity input defaults
	// to a 30-day interval instead of failing.
	m := &Metrics{Videos: newestFirst(100)}

	card := ChannelScore(m)

	// max(0, 100 - 30*3.3) = 1
	if card.Breakdown[ScoreKeyActivity] != 1 {
		t.Errorf("Breakdown[activity] = %d, want 1", card.Breakdown[ScoreKeyActivity])
	}
}

func TestChannelScore_ActivityFromCadence(t *testing.T) {
	tests := []struct {
		name     string
		cadence  float64
		expected int
	}{
		{"daily uploader", 1, 97},      // 100 - 3.3
		{"weekly uploader", 7, 77},     // 100 - 23.1
		{"monthly uploader", 30, 1},    // 100 - 99
		{"dormant channel", 120, 0},    // clamped
		{"several per day", 0.5, 98},   // 100 - 1.65 -> 98.35
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Metrics{
				UploadFrequencyDays: tt.cadence,
				Videos:              newestFirst(1, 2),
			}
			card := ChannelScore(m)
			if card.Breakdown[ScoreKeyActivity] != tt.expected {
				t.Errorf("Breakdown[activity] = %d, want %d",
					card.Breakdown[ScoreKeyActivity], tt.expected)
			}
		})
	}
}
