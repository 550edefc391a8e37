package service

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	"channel-insights-service/internal/domain"
)

// fakeSelectionStore implements domain.SelectionStore in memory.
type fakeSelectionStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeSelectionStore() *fakeSelectionStore {
	return &fakeSelectionStore{data: make(map[string][]byte)}
}

func (f *fakeSelectionStore) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.data[key], nil
}

func (f *fakeSelectionStore) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value

	return nil
}

func TestSelectionService_SaveAndGet(t *testing.T) {
	svc := NewSelectionService(newFakeSelectionStore(), zap.NewNop())
	ctx := context.Background()

	refs := []domain.ChannelRef{
		{ID: "UC-one", Title: "침착맨"},
		{ID: "UC-two", Title: "보겸TV"},
	}

	saved, err := svc.Save(ctx, "my-channels", refs)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("saved %d refs, want 2", len(saved))
	}

	loaded, err := svc.Get(ctx, "my-channels")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(loaded) != 2 || loaded[0].Title != "침착맨" {
		t.Errorf("Get() = %+v, want the saved selection", loaded)
	}
}

func TestSelectionService_Get_Unset(t *testing.T) {
	svc := NewSelectionService(newFakeSelectionStore(), zap.NewNop())

	refs, err := svc.Get(context.Background(), "never-saved")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if refs == nil {
		t.Fatal("Get() = nil, want empty slice")
	}
	if len(refs) != 0 {
		t.Errorf("got %d refs, want 0", len(refs))
	}
}

func TestSelectionService_Save_DeduplicatesByID(t *testing.T) {
	svc := NewSelectionService(newFakeSelectionStore(), zap.NewNop())

	saved, err := svc.Save(context.Background(), "k", []domain.ChannelRef{
		{ID: "UC-one", Title: "첫 번째"},
		{ID: "UC-one", Title: "중복"},
		{ID: "", Title: "아이디 없음"},
		{ID: "UC-two", Title: "두 번째"},
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("saved %d refs, want 2 after dedup", len(saved))
	}
	if saved[0].Title != "첫 번째" {
		t.Errorf("first occurrence should win, got %q", saved[0].Title)
	}
}

func TestSelectionService_Save_TooMany(t *testing.T) {
	svc := NewSelectionService(newFakeSelectionStore(), zap.NewNop())

	refs := make([]domain.ChannelRef, MaxSelectedChannels+1)
	for i := range refs {
		refs[i] = domain.ChannelRef{ID: string(rune('a' + i))}
	}

	if _, err := svc.Save(context.Background(), "k", refs); err == nil {
		t.Error("Save() expected error above the selection cap")
	}
}

func TestSelectionService_Get_CorruptData(t *testing.T) {
	store := newFakeSelectionStore()
	store.data["selections:bad"] = []byte("{not json")
	svc := NewSelectionService(store, zap.NewNop())

	refs, err := svc.Get(context.Background(), "bad")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(refs) != 0 {
		t.Errorf("corrupt selection should reset to empty, got %+v", refs)
	}
}
