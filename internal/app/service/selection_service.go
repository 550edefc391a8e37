package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"channel-insights-service/internal/domain"
)

// MaxSelectedChannels bounds one saved selection set.
const MaxSelectedChannels = 5

// SelectionService manages saved channel selections through the injected
// key-value store. Selections are presentation state, not analysis
// input; the engine never sees them.
type SelectionService struct {
	store  domain.SelectionStore
	logger *zap.Logger
}

// NewSelectionService creates a new SelectionService.
func NewSelectionService(store domain.SelectionStore, logger *zap.Logger) *SelectionService {
	return &SelectionService{
		store:  store,
		logger: logger,
	}
}

// Get returns the saved selection for key, or an empty slice when none
// was ever saved.
func (s *SelectionService) Get(ctx context.Context, key string) ([]domain.ChannelRef, error) {
	data, err := s.store.Get(ctx, selectionKey(key))
	if err != nil {
		s.logger.Error("selection load failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}
	if data == nil {
		return []domain.ChannelRef{}, nil
	}

	var refs []domain.ChannelRef
	if err := json.Unmarshal(data, &refs); err != nil {
		// A corrupt stored selection resets to empty rather than failing.
		s.logger.Warn("corrupt selection dropped", zap.String("key", key), zap.Error(err))
		return []domain.ChannelRef{}, nil
	}

	return refs, nil
}

// Save stores a selection set, deduplicating by channel id and enforcing
// the size cap.
func (s *SelectionService) Save(ctx context.Context, key string, refs []domain.ChannelRef) ([]domain.ChannelRef, error) {
	deduped := make([]domain.ChannelRef, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))

	for _, ref := range refs {
		if ref.ID == "" {
			continue
		}
		if _, dup := seen[ref.ID]; dup {
			continue
		}
		seen[ref.ID] = struct{}{}
		deduped = append(deduped, ref)
	}

	if len(deduped) > MaxSelectedChannels {
		return nil, fmt.Errorf("at most %d channels can be selected, got %d",
			MaxSelectedChannels, len(deduped))
	}

	data, err := json.Marshal(deduped)
	if err != nil {
		return nil, fmt.Errorf("encoding selection: %w", err)
	}

	if err := s.store.Set(ctx, selectionKey(key), data); err != nil {
		s.logger.Error("selection save failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	s.logger.Debug("selection saved",
		zap.String("key", key),
		zap.Int("channels", len(deduped)),
	)

	return deduped, nil
}

func selectionKey(key string) string {
	return "selections:" + key
}
