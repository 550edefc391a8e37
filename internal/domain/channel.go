// Package domain contains the core analytics engine and entities.
// This package has no external dependencies (only stdlib).
package domain

import "time"

// ChannelRef is a lightweight channel reference returned by search.
type ChannelRef struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
}

// ChannelProfile is the immutable channel input supplied by the data source.
type ChannelProfile struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`

	// Cumulative counters
	Subscribers int64 `json:"subscribers"`
	TotalViews  int64 `json:"total_views"`
	VideoCount  int64 `json:"video_count"`

	// UploadsPlaylistID identifies the channel's uploads playlist on the
	// source platform. Plumbing for the retrieval layer, unused by the engine.
	UploadsPlaylistID string `json:"uploads_playlist_id,omitempty"`

	PublishedAt time.Time `json:"published_at"`
}

// Video is one published upload. Immutable input.
//
// DurationSeconds is already parsed from the source's ISO-8601 encoding;
// see ParseDuration.
type Video struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Thumbnail       string    `json:"thumbnail"`
	PublishedAt     time.Time `json:"published_at"`
	DurationSeconds int       `json:"duration_seconds"`
	Views           int64     `json:"views"`
	Likes           int64     `json:"likes"`
	Comments        int64     `json:"comments"`
}

// IsShortForm reports whether the video counts as short-form content.
// The cutoff is 3 minutes.
func (v *Video) IsShortForm() bool {
	return v.DurationSeconds <= shortFormMaxSeconds
}

const shortFormMaxSeconds = 180
