package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "achievement_tracker"

var (
	// UpstreamRequests counts calls to the backend proxy by operation and outcome.
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Requests sent to the game platform proxy.",
	}, []string{"operation", "outcome"})

	// LibraryCache counts LoadLibrary calls served from cache (hit) or refetched (miss, forced).
	LibraryCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "library_cache_total",
		Help:      "Library loads by cache outcome.",
	}, []string{"result"})

	// DegradedGames counts games whose schema or state fetch failed during aggregation.
	DegradedGames = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "degraded_games_total",
		Help:      "Games degraded during aggregation by failed fetch.",
	}, []string{"fetch"})

	AggregationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "aggregation_duration_seconds",
		Help:      "Duration of full library aggregation runs.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
	})

	// DiscardedRuns counts aggregation runs whose result was not persisted because a newer run started.
	DiscardedRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "discarded_runs_total",
		Help:      "Aggregation runs superseded by a newer run before persisting.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
