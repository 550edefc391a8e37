package youtube

import (
	"strconv"
	"time"

	"channel-insights-service/internal/domain"
)

// searchResponse is the YouTube Data API search.list payload.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	ID struct {
		ChannelID string `json:"channelId"`
	} `json:"id"`
	Snippet snippet `json:"snippet"`
}

// channelsResponse is the channels.list payload.
type channelsResponse struct {
	Items []channelItem `json:"items"`
}

type channelItem struct {
	ID         string     `json:"id"`
	Snippet    snippet    `json:"snippet"`
	Statistics statistics `json:"statistics"`

	ContentDetails struct {
		RelatedPlaylists struct {
			Uploads string `json:"uploads"`
		} `json:"relatedPlaylists"`
	} `json:"contentDetails"`
}

// playlistItemsResponse is the playlistItems.list payload.
type playlistItemsResponse struct {
	Items []playlistItem `json:"items"`
}

type playlistItem struct {
	ContentDetails struct {
		VideoID string `json:"videoId"`
	} `json:"contentDetails"`
}

// videosResponse is the videos.list payload.
type videosResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID         string     `json:"id"`
	Snippet    snippet    `json:"snippet"`
	Statistics statistics `json:"statistics"`

	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
}

type snippet struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`

	Thumbnails struct {
		Default thumbnail `json:"default"`
		Medium  thumbnail `json:"medium"`
		High    thumbnail `json:"high"`
	} `json:"thumbnails"`
}

type thumbnail struct {
	URL string `json:"url"`
}

// statistics holds counters. The API serializes them as strings.
type statistics struct {
	ViewCount       string `json:"viewCount"`
	SubscriberCount string `json:"subscriberCount"`
	VideoCount      string `json:"videoCount"`
	LikeCount       string `json:"likeCount"`
	CommentCount    string `json:"commentCount"`
}

// thumbnailURL prefers the medium rendition and falls back to default.
func (s *snippet) thumbnailURL() string {
	if s.Thumbnails.Medium.URL != "" {
		return s.Thumbnails.Medium.URL
	}

	return s.Thumbnails.Default.URL
}

// ToDomain converts a channelItem to a domain.ChannelProfile.
func (c *channelItem) ToDomain() *domain.ChannelProfile {
	publishedAt, _ := time.Parse(time.RFC3339, c.Snippet.PublishedAt)

	return &domain.ChannelProfile{
		ID:                c.ID,
		Title:             c.Snippet.Title,
		Thumbnail:         c.Snippet.thumbnailURL(),
		Subscribers:       parseCount(c.Statistics.SubscriberCount),
		TotalViews:        parseCount(c.Statistics.ViewCount),
		VideoCount:        parseCount(c.Statistics.VideoCount),
		UploadsPlaylistID: c.ContentDetails.RelatedPlaylists.Uploads,
		PublishedAt:       publishedAt,
	}
}

// ToDomain converts a videoItem to a domain.Video.
func (v *videoItem) ToDomain() domain.Video {
	publishedAt, _ := time.Parse(time.RFC3339, v.Snippet.PublishedAt)

	return domain.Video{
		ID:              v.ID,
		Title:           v.Snippet.Title,
		Description:     v.Snippet.Description,
		Thumbnail:       v.Snippet.thumbnailURL(),
		PublishedAt:     publishedAt,
		DurationSeconds: domain.ParseDuration(v.ContentDetails.Duration),
		Views:           parseCount(v.Statistics.ViewCount),
		Likes:           parseCount(v.Statistics.LikeCount),
		Comments:        parseCount(v.Statistics.CommentCount),
	}
}

// parseCount parses a numeric string counter. Missing or hidden counters
// come through as empty strings and count as zero.
func parseCount(s string) int64 {
	if s == "" {
		return 0
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}

	return n
}
