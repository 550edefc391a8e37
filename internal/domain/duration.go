package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// iso8601Duration matches the PT[nH][nM][nS] encoding used by the video
// platform. Any subset of the three fields may be absent.
var iso8601Duration = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseDuration converts an ISO-8601 duration string (e.g. "PT3M45S") to
// total seconds. Empty or malformed input yields 0, never an error:
// a missing duration is treated as zero-length.
func ParseDuration(s string) int {
	if s == "" {
		return 0
	}
	m := iso8601Duration.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	hours := atoiOrZero(m[1])
	minutes := atoiOrZero(m[2])
	seconds := atoiOrZero(m[3])

	return hours*3600 + minutes*60 + seconds
}

// FormatDuration renders seconds as "H:MM:SS" or "M:SS" for display.
// Zero-length durations render as "-".
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "-"
	}

	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%d:%02d", m, s)
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}
