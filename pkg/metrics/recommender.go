package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the full recommend pipeline (filter, score, rank).
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of the recommendation pipeline",
		Buckets: prometheus.DefBuckets,
	})

	// Total recommendation requests that reached the engine.
	RecommendRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommendation requests",
	})

	// Result rows served, partitioned by student category.
	RecommendationsServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Count of recommendation rows served by student category",
		},
		[]string{"category"},
	)

	// Requests that matched no offering after filtering.
	EmptyResultsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_empty_results_total",
		Help: "Requests for which no offering was eligible",
	})

	// How many offerings survive the eligibility filter per request.
	EligibleOfferings = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_eligible_offerings",
		Help:    "Offerings passing the eligibility filter per request",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})

	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_cache_hits_total",
		Help: "Recommendation responses served from cache",
	})

	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_cache_misses_total",
		Help: "Recommendation requests not found in cache",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequestsTotal,
		RecommendationsServed,
		EmptyResultsTotal,
		EligibleOfferings,
		CacheHitsTotal,
		CacheMissesTotal,
	)
}
