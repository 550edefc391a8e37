package domain

import (
	"context"
	"time"
)

// ChannelSource defines the interface for the external video-platform
// data source. The engine itself never touches the network; this is the
// retrieval collaborator's contract.
// Implementations: internal/infra/youtube/
type ChannelSource interface {
	// SearchChannel finds the best-matching channel for a free-text query.
	// Returns nil when nothing matches.
	SearchChannel(ctx context.Context, query string) (*ChannelRef, error)

	// FetchChannel retrieves the full profile for a channel id.
	FetchChannel(ctx context.Context, channelID string) (*ChannelProfile, error)

	// FetchRecentVideos retrieves up to maxResults recent uploads from the
	// given uploads playlist, sorted newest-first. The engine trusts this
	// ordering but does not enforce it.
	FetchRecentVideos(ctx context.Context, uploadsPlaylistID string, maxResults int) ([]Video, error)

	// HealthCheck verifies the source is accessible.
	HealthCheck(ctx context.Context) error
}

// SnapshotRepository defines persistence for analysis snapshots.
// Implementations: internal/infra/postgres/repository.go
type SnapshotRepository interface {
	// Upsert creates or updates the snapshot for one channel,
	// keyed by channel id.
	Upsert(ctx context.Context, snapshot *Snapshot) error

	// BulkUpsert creates or updates multiple snapshots in a batch.
	BulkUpsert(ctx context.Context, snapshots []*Snapshot) error

	// GetByChannelID retrieves the stored snapshot for a channel.
	// Returns nil when the channel has never been analyzed.
	GetByChannelID(ctx context.Context, channelID string) (*Snapshot, error)

	// ListTracked returns the ids of every channel with a stored snapshot.
	ListTracked(ctx context.Context) ([]string, error)

	// Rankings returns stored snapshots ordered by composite score
	// descending, capped at limit.
	Rankings(ctx context.Context, limit int) ([]*Snapshot, error)

	// Delete removes a channel's snapshot.
	Delete(ctx context.Context, channelID string) error

	// Count returns the number of stored snapshots.
	Count(ctx context.Context) (int64, error)
}

// Cache defines the interface for caching analysis results.
// Implementations: internal/infra/redis/cache.go
type Cache interface {
	// Get retrieves a value by key. Returns nil if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error

	// Clear removes all cached values.
	Clear(ctx context.Context) error
}

// SelectionStore is a small key-value store for persisted user state
// such as saved channel selections.
// Implementations: internal/infra/redis/selections.go
type SelectionStore interface {
	// Get retrieves the stored value for key. Returns nil when unset.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
