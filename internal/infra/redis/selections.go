package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SelectionStore implements domain.SelectionStore using Redis. Saved
// selections are small JSON blobs persisted without expiry.
type SelectionStore struct {
	client    *redis.Client
	logger    *zap.Logger
	keyPrefix string
}

// NewSelectionStore creates a new Redis-backed selection store.
func NewSelectionStore(client *redis.Client, logger *zap.Logger, keyPrefix string) *SelectionStore {
	return &SelectionStore{
		client:    client,
		logger:    logger,
		keyPrefix: keyPrefix,
	}
}

// Get retrieves the stored value for key. Returns nil when unset.
func (s *SelectionStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.buildKey(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("selection get failed",
			zap.String("key", key),
			zap.Error(err),
		)

		return nil, err
	}

	return data, nil
}

// Set stores value under key, replacing any previous value. Selections
// never expire; they are explicit user state.
func (s *SelectionStore) Set(ctx context.Context, key string, value []byte) error {
	err := s.client.Set(ctx, s.buildKey(key), value, 0).Err()
	if err != nil {
		s.logger.Error("selection set failed",
			zap.String("key", key),
			zap.Error(err),
		)

		return err
	}

	return nil
}

func (s *SelectionStore) buildKey(key string) string {
	return s.keyPrefix + ":" + key
}
