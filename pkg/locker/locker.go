// Package locker provides distributed locking for coordinating work
// across multiple service instances.
package locker

import (
	"context"
	"time"
)

// DistributedLocker coordinates exclusive work across instances.
// Implementations must be safe for concurrent use.
type DistributedLocker interface {
	// Acquire attempts to take the lock identified by key. It returns
	// true when the lock was taken and false when another instance
	// holds it. The lock expires after ttl if never released, so the
	// ttl doubles as a cooldown period for scheduled work.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release gives up the lock identified by key. Calling it for a
	// lock this instance does not own is a no-op.
	Release(ctx context.Context, key string) error
}
