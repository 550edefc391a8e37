package domain

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"hours minutes seconds", "PT1H2M3S", 3723},
		{"minutes seconds", "PT3M45S", 225},
		{"seconds only", "PT45S", 45},
		{"minutes only", "PT10M", 600},
		{"hours only", "PT2H", 7200},
		{"empty string", "", 0},
		{"garbage", "not-a-duration", 0},
		{"bare prefix", "PT", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDuration(tt.input)
			if got != tt.expected {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{"with hours", 3723, "1:02:03"},
		{"minutes and seconds", 225, "3:45"},
		{"under a minute", 45, "0:45"},
		{"zero", 0, "-"},
		{"negative", -5, "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDuration(tt.seconds)
			if got != tt.expected {
				t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.expected)
			}
		})
	}
}
