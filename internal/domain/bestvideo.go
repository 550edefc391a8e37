package domain

// BestVideo describes the best-performing upload within the recency
// window, carrying enough fields for an external renderer without
// re-touching the source video.
type BestVideo struct {
	VideoID         string `json:"video_id"`
	Title           string `json:"title"`
	Thumbnail       string `json:"thumbnail"`
	Views           int64  `json:"views"`
	Likes           int64  `json:"likes"`
	DurationSeconds int    `json:"duration_seconds"`
	PublishedAt     string `json:"published_at"`
}

// FindBestVideo selects the video with the highest view count among the
// 30 most recent uploads. Ties go to the earlier batch position, so with
// a newest-first batch the newer video wins. Returns nil for an empty
// batch.
func FindBestVideo(videos []Video) *BestVideo {
	window := firstN(videos, recentViewsWindow)
	if len(window) == 0 {
		return nil
	}

	best := &window[0]
	for i := 1; i < len(window); i++ {
		if window[i].Views > best.Views {
			best = &window[i]
		}
	}

	return &BestVideo{
		VideoID:         best.ID,
		Title:           best.Title,
		Thumbnail:       best.Thumbnail,
		Views:           best.Views,
		Likes:           best.Likes,
		DurationSeconds: best.DurationSeconds,
		PublishedAt:     best.PublishedAt.Format("2006. 1. 2."),
	}
}
