package domain

// ChannelAnalysis is the full per-channel analysis result: the derived
// metrics plus the four independent views over them and the raw batch.
type ChannelAnalysis struct {
	Metrics       *Metrics       `json:"metrics"`
	Radar         Radar          `json:"radar"`
	Score         Scorecard      `json:"score"`
	UploadPattern UploadPattern  `json:"upload_pattern"`
	BestVideo     *BestVideo     `json:"best_video,omitempty"`
	Keywords      []KeywordEntry `json:"keywords"`
}

// Analyze runs the complete analysis pipeline for one channel. Metrics
// are derived first; the scoring, pattern, best-video and keyword stages
// then consume the metrics and/or the raw batch independently of each
// other. The call is pure and side-effect-free: identical inputs always
// produce identical, freshly allocated output, so callers may analyze
// many channels concurrently with no coordination. Re-analysis after
// filtering the batch (e.g. short-form only) is simply a fresh call with
// the smaller batch.
func Analyze(profile *ChannelProfile, videos []Video) *ChannelAnalysis {
	metrics := ComputeMetrics(profile, videos)

	return &ChannelAnalysis{
		Metrics:       metrics,
		Radar:         RadarScores(metrics),
		Score:         ChannelScore(metrics),
		UploadPattern: AnalyzeUploadPattern(videos),
		BestVideo:     FindBestVideo(videos),
		Keywords:      MineKeywords(videos),
	}
}
