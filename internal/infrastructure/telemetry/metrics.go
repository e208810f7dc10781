// Package telemetry exports dashboard and recommender metrics to Prometheus.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeMatched   = "matched"
	OutcomeNoMatches = "no_matches"

	CacheView           = "view"
	CacheRecommendation = "recommendation"
)

//nolint:gochecknoglobals
var (
	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restaurant_analytics_cache_hits_total",
			Help: "Cache lookups answered from the cache",
		},
		[]string{"cache"},
	)

	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restaurant_analytics_cache_misses_total",
			Help: "Cache lookups that had to be computed",
		},
		[]string{"cache"},
	)

	CacheErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restaurant_analytics_cache_errors_total",
			Help: "Cache operations that failed",
		},
		[]string{"cache"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restaurant_analytics_recommendations_total",
			Help: "Recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	ViewRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "restaurant_analytics_view_rows",
			Help:    "Rows in computed filtered views",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	DatasetRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "restaurant_analytics_dataset_rows",
			Help: "Rows in the loaded dataset",
		},
	)
)

// Recorder adapts the package collectors to the analytics service.
type Recorder struct{}

func NewRecorder() Recorder {
	return Recorder{}
}

func (Recorder) CacheHit(cache string) {
	CacheHitsTotal.WithLabelValues(cache).Inc()
}

func (Recorder) CacheMiss(cache string) {
	CacheMissesTotal.WithLabelValues(cache).Inc()
}

func (Recorder) CacheError(cache string) {
	CacheErrorsTotal.WithLabelValues(cache).Inc()
}

func (Recorder) ViewComputed(rows int) {
	ViewRows.Observe(float64(rows))
}

func (Recorder) Recommendation(noMatches bool) {
	outcome := OutcomeMatched
	if noMatches {
		outcome = OutcomeNoMatches
	}

	RecommendationsTotal.WithLabelValues(outcome).Inc()
}

func (Recorder) DatasetLoaded(rows int) {
	DatasetRows.Set(float64(rows))
}
