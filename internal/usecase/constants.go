package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database
	// transaction. Keeps a stuck import from holding locks indefinitely.
	DefaultTransactionTimeout = 10 * time.Second

	// snapshotCacheKey is the redis key under which the derived
	// balances/settlements snapshot is memoized.
	snapshotCacheKey = "snapshot"

	// snapshotCacheTTL bounds staleness if an invalidation is ever missed.
	// Balances are always recomputable from scratch; the cache is only a
	// memoization, never a source of truth.
	snapshotCacheTTL = 30 * time.Second
)
