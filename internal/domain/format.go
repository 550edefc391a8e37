package domain

import (
	"fmt"
	"time"
)

// FormatCount renders a count with Korean grouping units
// (천 = thousand, 만 = ten thousand, 억 = hundred million).
func FormatCount(n int64) string {
	switch {
	case n >= 100_000_000:
		return formatUnit(float64(n)/100_000_000, "억")
	case n >= 10_000:
		return formatUnit(float64(n)/10_000, "만")
	case n >= 1_000:
		return formatUnit(float64(n)/1_000, "천")
	default:
		return fmt.Sprintf("%d", n)
	}
}

func formatUnit(value float64, unit string) string {
	if value == float64(int64(value)) {
		return fmt.Sprintf("%d%s", int64(value), unit)
	}

	return fmt.Sprintf("%.1f%s", value, unit)
}

// FormatRelativeDate renders how long ago a timestamp was, relative to
// now ("3일 전", "2주 전").
func FormatRelativeDate(t, now time.Time) string {
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		days = -days
	}

	switch {
	case days == 0:
		return "오늘"
	case days < 7:
		return fmt.Sprintf("%d일 전", days)
	case days < 30:
		return fmt.Sprintf("%d주 전", days/7)
	case days < 365:
		return fmt.Sprintf("%d개월 전", days/30)
	default:
		return fmt.Sprintf("%d년 전", days/365)
	}
}
