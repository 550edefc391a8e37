package youtube

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBaseURL = "https://youtube.example.com/v3"

func newTestClient() *Client {
	cfg := ClientConfig{
		BaseURL: testBaseURL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			WaitTime:    100 * time.Millisecond,
			MaxWaitTime: 500 * time.Millisecond,
		},
		CB: CBConfig{
			MaxRequests:  5,
			Interval:     60 * time.Second,
			Timeout:      15 * time.Second,
			FailureRatio: 0.6,
		},
	}
	client := New(cfg, zap.NewNop())

	// Activate httpmock for this client's HTTP transport
	httpmock.ActivateNonDefault(client.client.GetClient())

	return client
}

func mockChannelsResponse() channelsResponse {
	var item channelItem
	item.ID = "UCtest000000000000000001"
	item.Snippet.Title = "테스트 채널"
	item.Snippet.PublishedAt = "2019-03-05T09:00:00Z"
	item.Snippet.Thumbnails.Medium.URL = "https://img.example.com/m.jpg"
	item.Statistics.SubscriberCount = "125000"
	item.Statistics.ViewCount = "48000000"
	item.Statistics.VideoCount = "321"
	item.ContentDetails.RelatedPlaylists.Uploads = "UUtest000000000000000001"

	return channelsResponse{Items: []channelItem{item}}
}

// TestClient_SearchChannel_Success tests search result mapping.
func TestClient_SearchChannel_Success(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	var item searchItem
	item.ID.ChannelID = "UCtest000000000000000001"
	item.Snippet.Title = "테스트 채널"
	item.Snippet.Thumbnails.Default.URL = "https://img.example.com/d.jpg"

	httpmock.RegisterResponder("GET", testBaseURL+"/search",
		httpmock.NewJsonResponderOrPanic(200, searchResponse{Items: []searchItem{item}}))

	client := newTestClient()
	ref, err := client.SearchChannel(context.Background(), "테스트")

	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, "UCtest000000000000000001", ref.ID)
	assert.Equal(t, "테스트 채널", ref.Title)
	assert.Equal(t, "https://img.example.com/d.jpg", ref.Thumbnail)
}

// TestClient_SearchChannel_NoMatch tests the empty result case.
func TestClient_SearchChannel_NoMatch(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/search",
		httpmock.NewJsonResponderOrPanic(200, searchResponse{}))

	client := newTestClient()
	ref, err := client.SearchChannel(context.Background(), "없는 채널")

	require.NoError(t, err)
	assert.Nil(t, ref)
}

// TestClient_FetchChannel_Success tests profile mapping including the
// string counters and uploads playlist ID.
func TestClient_FetchChannel_Success(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/channels",
		httpmock.NewJsonResponderOrPanic(200, mockChannelsResponse()))

	client := newTestClient()
	profile, err := client.FetchChannel(context.Background(), "UCtest000000000000000001")

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "테스트 채널", profile.Title)
	assert.Equal(t, int64(125000), profile.Subscribers)
	assert.Equal(t, int64(48000000), profile.TotalViews)
	assert.Equal(t, int64(321), profile.VideoCount)
	assert.Equal(t, "UUtest000000000000000001", profile.UploadsPlaylistID)
	assert.Equal(t, "https://img.example.com/m.jpg", profile.Thumbnail)

	expectedTime, _ := time.Parse(time.RFC3339, "2019-03-05T09:00:00Z")
	assert.Equal(t, expectedTime, profile.PublishedAt)
}

// TestClient_FetchChannel_NotFound tests the missing channel case.
func TestClient_FetchChannel_NotFound(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/channels",
		httpmock.NewJsonResponderOrPanic(200, channelsResponse{}))

	client := newTestClient()
	profile, err := client.FetchChannel(context.Background(), "UCmissing0000000000000001")

	require.NoError(t, err)
	assert.Nil(t, profile)
}

// TestClient_FetchRecentVideos_Success tests the two-step playlist then
// videos flow with duration parsing and hidden counters.
func TestClient_FetchRecentVideos_Success(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	var playlist playlistItemsResponse
	playlist.Items = make([]playlistItem, 2)
	playlist.Items[0].ContentDetails.VideoID = "vid-1"
	playlist.Items[1].ContentDetails.VideoID = "vid-2"

	var v1, v2 videoItem
	v1.ID = "vid-1"
	v1.Snippet.Title = "첫 번째 영상"
	v1.Snippet.PublishedAt = "2025-06-01T12:00:00Z"
	v1.ContentDetails.Duration = "PT15M33S"
	v1.Statistics.ViewCount = "42000"
	v1.Statistics.LikeCount = "1300"
	v1.Statistics.CommentCount = "210"

	v2.ID = "vid-2"
	v2.Snippet.Title = "쇼츠"
	v2.Snippet.PublishedAt = "2025-05-30T08:00:00Z"
	v2.ContentDetails.Duration = "PT58S"
	v2.Statistics.ViewCount = "9000"
	// Like count hidden by the uploader

	httpmock.RegisterResponder("GET", testBaseURL+"/playlistItems",
		httpmock.NewJsonResponderOrPanic(200, playlist))
	httpmock.RegisterResponder("GET", testBaseURL+"/videos",
		httpmock.NewJsonResponderOrPanic(200, videosResponse{Items: []videoItem{v1, v2}}))

	client := newTestClient()
	videos, err := client.FetchRecentVideos(context.Background(), "UUtest000000000000000001", 50)

	require.NoError(t, err)
	require.Len(t, videos, 2)

	assert.Equal(t, "vid-1", videos[0].ID)
	assert.Equal(t, 933, videos[0].DurationSeconds)
	assert.Equal(t, int64(42000), videos[0].Views)
	assert.Equal(t, int64(1300), videos[0].Likes)

	assert.Equal(t, 58, videos[1].DurationSeconds)
	assert.True(t, videos[1].IsShortForm())
	assert.Equal(t, int64(0), videos[1].Likes)
}

// TestClient_FetchRecentVideos_EmptyPlaylist tests that an empty playlist
// skips the videos call entirely.
func TestClient_FetchRecentVideos_EmptyPlaylist(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/playlistItems",
		httpmock.NewJsonResponderOrPanic(200, playlistItemsResponse{}))

	client := newTestClient()
	videos, err := client.FetchRecentVideos(context.Background(), "UUempty", 50)

	require.NoError(t, err)
	assert.Empty(t, videos)

	info := httpmock.GetCallCountInfo()
	assert.Zero(t, info["GET "+testBaseURL+"/videos"])
}

// TestClient_HTTPError_4xx tests client error handling.
func TestClient_HTTPError_4xx(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"400 Bad Request", 400},
		{"403 Quota Exceeded", 403},
		{"404 Not Found", 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder("GET", testBaseURL+"/channels",
				httpmock.NewStringResponder(tt.statusCode, "Error"))

			client := newTestClient()
			profile, err := client.FetchChannel(context.Background(), "UCx")

			require.Error(t, err)
			assert.Nil(t, profile)
			assert.Contains(t, err.Error(), fmt.Sprintf("status %d", tt.statusCode))
		})
	}
}

// TestClient_Retry_ThenSuccess tests the retry path on 5xx.
func TestClient_Retry_ThenSuccess(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	callCount := 0
	httpmock.RegisterResponder("GET", testBaseURL+"/channels",
		func(_ *http.Request) (*http.Response, error) {
			callCount++
			if callCount < 3 {
				return httpmock.NewStringResponse(500, "Server Error"), nil
			}

			return httpmock.NewJsonResponse(200, mockChannelsResponse())
		})

	client := newTestClient()
	profile, err := client.FetchChannel(context.Background(), "UCtest000000000000000001")

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, 3, callCount, "should retry twice and succeed on 3rd attempt")
}

// TestClient_CircuitBreaker_Opens tests that the breaker opens after
// consecutive failures and fails fast afterwards.
func TestClient_CircuitBreaker_Opens(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/channels",
		httpmock.NewStringResponder(500, "Internal Server Error"))

	client := newTestClient()

	for i := 0; i < 5; i++ {
		_, err := client.FetchChannel(context.Background(), "UCx")
		require.Error(t, err)
	}

	start := time.Now()
	_, err := client.FetchChannel(context.Background(), "UCx")
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
	assert.Less(t, elapsed.Milliseconds(), int64(100))
}

// TestClient_HealthCheck tests the reachability probe.
func TestClient_HealthCheck(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testBaseURL+"/channels",
		httpmock.NewJsonResponderOrPanic(200, mockChannelsResponse()))

	client := newTestClient()
	assert.NoError(t, client.HealthCheck(context.Background()))
}
