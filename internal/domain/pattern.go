package domain

// UploadPattern holds publication-time histograms. Each bucket is the
// upload count normalized against the busiest bucket of its family, so
// values are in [0, 1] with the busiest bucket at exactly 1.0. Days use
// the 0=Sunday .. 6=Saturday convention.
type UploadPattern struct {
	Hours [24]float64 `json:"hours"`
	Days  [7]float64  `json:"days"`
}

// AnalyzeUploadPattern buckets every video's publication timestamp by
// hour-of-day and day-of-week and normalizes each family independently.
// Timestamps are bucketed in their own location; callers wanting a
// specific timezone convert before building the batch.
// An empty batch yields all-zero histograms, never a division error.
func AnalyzeUploadPattern(videos []Video) UploadPattern {
	var hourCounts [24]int
	var dayCounts [7]int

	for i := range videos {
		published := videos[i].PublishedAt
		hourCounts[published.Hour()]++
		dayCounts[int(published.Weekday())]++
	}

	var pattern UploadPattern

	maxHour := maxCount(hourCounts[:])
	for h, count := range hourCounts {
		pattern.Hours[h] = float64(count) / float64(maxHour)
	}

	maxDay := maxCount(dayCounts[:])
	for d, count := range dayCounts {
		pattern.Days[d] = float64(count) / float64(maxDay)
	}

	return pattern
}

// maxCount returns the largest count, with a floor of 1 so an empty batch
// normalizes to zeros instead of dividing by zero.
func maxCount(counts []int) int {
	max := 1
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	return max
}
