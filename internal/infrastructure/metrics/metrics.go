package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application-level Prometheus metrics. HTTP request
// metrics live in the middleware; these track how well the snapshot
// memoization is doing.
type Metrics struct {
	// Snapshot cache metrics
	SnapshotCacheHits   prometheus.Counter
	SnapshotCacheMisses prometheus.Counter
	CacheErrors         *prometheus.CounterVec
}

// New creates and registers all application metrics.
func New() *Metrics {
	return &Metrics{
		SnapshotCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitpot_snapshot_cache_hits_total",
			Help: "Total snapshot cache hits",
		}),
		SnapshotCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitpot_snapshot_cache_misses_total",
			Help: "Total snapshot cache misses",
		}),
		CacheErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitpot_cache_errors_total",
				Help: "Total cache errors by operation",
			},
			[]string{"operation"},
		),
	}
}
