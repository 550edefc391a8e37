package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"channel-insights-service/internal/domain"
)

// fakeSource implements domain.ChannelSource over in-memory fixtures.
type fakeSource struct {
	profiles map[string]*domain.ChannelProfile
	videos   map[string][]domain.Video
	fetchErr error

	mu      sync.Mutex
	fetches int
}

func (f *fakeSource) SearchChannel(_ context.Context, query string) (*domain.ChannelRef, error) {
	for _, p := range f.profiles {
		if p.Title == query {
			return &domain.ChannelRef{ID: p.ID, Title: p.Title, Thumbnail: p.Thumbnail}, nil
		}
	}

	return nil, nil
}

func (f *fakeSource) FetchChannel(_ context.Context, channelID string) (*domain.ChannelProfile, error) {
	f.mu.Lock()
	f.fetches++
	f.mu.Unlock()

	if f.fetchErr != nil {
		return nil, f.fetchErr
	}

	return f.profiles[channelID], nil
}

func (f *fakeSource) FetchRecentVideos(_ context.Context, playlistID string, _ int) ([]domain.Video, error) {
	return f.videos[playlistID], nil
}

func (f *fakeSource) HealthCheck(_ context.Context) error { return nil }

// fakeRepo implements domain.SnapshotRepository in memory.
type fakeRepo struct {
	mu        sync.Mutex
	snapshots map[string]*domain.Snapshot
	listErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{snapshots: make(map[string]*domain.Snapshot)}
}

func (r *fakeRepo) Upsert(_ context.Context, s *domain.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[s.ChannelID] = s

	return nil
}

func (r *fakeRepo) BulkUpsert(ctx context.Context, snapshots []*domain.Snapshot) error {
	for _, s := range snapshots {
		if err := r.Upsert(ctx, s); err != nil {
			return err
		}
	}

	return nil
}

func (r *fakeRepo) GetByChannelID(_ context.Context, id string) (*domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshots[id], nil
}

func (r *fakeRepo) ListTracked(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}

	ids := make([]string, 0, len(r.snapshots))
	for id := range r.snapshots {
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *fakeRepo) Rankings(_ context.Context, limit int) ([]*domain.Snapshot, error) {
	return nil, nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.snapshots, id)

	return nil
}

func (r *fakeRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.snapshots)), nil
}

func fixtureSource() *fakeSource {
	base := time.Date(2025, 5, 1, 18, 0, 0, 0, time.UTC)

	makeVideos := func(views ...int64) []domain.Video {
		videos := make([]domain.Video, len(views))
		for i, v := range views {
			videos[i] = domain.Video{
				ID:              "v",
				Title:           "업로드 영상",
				PublishedAt:     base.AddDate(0, 0, -i),
				DurationSeconds: 300,
				Views:           v,
				Likes:           v / 20,
			}
		}

		return videos
	}

	return &fakeSource{
		profiles: map[string]*domain.ChannelProfile{
			"UC-big": {
				ID: "UC-big", Title: "Big Channel", UploadsPlaylistID: "PL-big",
				Subscribers: 900_000, TotalViews: 400_000_000, VideoCount: 800,
				PublishedAt: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			"UC-small": {
				ID: "UC-small", Title: "Small Channel", UploadsPlaylistID: "PL-small",
				Subscribers: 2_000, TotalViews: 300_000, VideoCount: 50,
				PublishedAt: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		videos: map[string][]domain.Video{
			"PL-big":   makeVideos(400_000, 380_000, 390_000, 410_000, 420_000, 300_000, 310_000, 290_000, 305_000, 295_000),
			"PL-small": makeVideos(500, 450, 480, 520, 510, 600, 590, 610, 580, 620),
		},
	}
}

func newTestService(src *fakeSource, cache domain.Cache) (*AnalysisService, *fakeRepo) {
	repo := newFakeRepo()
	svc := NewAnalysisService(src, repo, cache, time.Minute, 50, zap.NewNop())

	return svc, repo
}

func TestAnalysisService_Analyze_PersistsSnapshot(t *testing.T) {
	svc, repo := newTestService(fixtureSource(), nil)

	analysis, err := svc.Analyze(context.Background(), "UC-big")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if analysis == nil {
		t.Fatal("Analyze() returned nil analysis")
	}

	snap, _ := repo.GetByChannelID(context.Background(), "UC-big")
	if snap == nil {
		t.Fatal("snapshot was not persisted")
	}
	if snap.ScoreTotal != analysis.Score.Total {
		t.Errorf("persisted score = %d, want %d", snap.ScoreTotal, analysis.Score.Total)
	}
}

func TestAnalysisService_Analyze_UnknownChannel(t *testing.T) {
	svc, _ := newTestService(fixtureSource(), nil)

	analysis, err := svc.Analyze(context.Background(), "UC-missing")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if analysis != nil {
		t.Errorf("Analyze() = %+v, want nil for unknown channel", analysis)
	}
}

func TestAnalysisService_Analyze_SourceError(t *testing.T) {
	src := fixtureSource()
	src.fetchErr = errors.New("quota exceeded")
	svc, _ := newTestService(src, nil)

	_, err := svc.Analyze(context.Background(), "UC-big")
	if err == nil {
		t.Fatal("Analyze() expected error when source fails")
	}
}

func TestAnalysisService_Compare_RanksByScore(t *testing.T) {
	svc, _ := newTestService(fixtureSource(), nil)

	entries, err := svc.Compare(context.Background(), []string{"UC-small", "UC-big"})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if entries[0].ChannelID != "UC-big" {
		t.Errorf("rank 1 = %s, want UC-big", entries[0].ChannelID)
	}
	if entries[0].Rank != 1 || entries[1].Rank != 2 {
		t.Errorf("ranks = %d/%d, want 1/2", entries[0].Rank, entries[1].Rank)
	}
	if entries[0].Analysis.Score.Total < entries[1].Analysis.Score.Total {
		t.Errorf("ranking not ordered by score")
	}
}

func TestAnalysisService_Compare_PartialFailure(t *testing.T) {
	svc, _ := newTestService(fixtureSource(), nil)

	entries, err := svc.Compare(context.Background(), []string{"UC-big", "UC-missing"})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	if entries[0].Error != nil {
		t.Errorf("successful channel should rank first, got error %v", entries[0].Error)
	}
	if entries[1].Error == nil {
		t.Error("missing channel should carry an error")
	}
	if entries[1].Rank != 0 {
		t.Errorf("failed entry Rank = %d, want 0", entries[1].Rank)
	}
}

func TestAnalysisService_Compare_TooManyChannels(t *testing.T) {
	svc, _ := newTestService(fixtureSource(), nil)

	ids := []string{"a", "b", "c", "d", "e", "f"}
	if _, err := svc.Compare(context.Background(), ids); err == nil {
		t.Error("Compare() expected error for more than 5 channels")
	}
}
