package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the batch allocation endpoint
	AllocationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "allocation_optimize_latency_seconds",
		Help:    "Latency of batch seat allocation requests",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of batch allocations served
	AllocationTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "allocation_optimize_total",
		Help: "Total batch seat allocation requests",
	})

	// Latency of the recommendation endpoint
	RecommendDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_latency_seconds",
		Help:    "Latency of seat recommendation requests",
		Buckets: prometheus.DefBuckets,
	})

	RecommendTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total seat recommendation requests",
	})
)

func Init() {
	prometheus.MustRegister(
		AllocationDuration,
		AllocationTotal,
		RecommendDuration,
		RecommendTotal,
	)
}
