package allocator

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	OptimizeRunsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "allocator_optimize_runs_total",
			Help: "Count of completed genetic allocation runs.",
		},
	)
)

func init() {
	prometheus.MustRegister(OptimizeRunsTotal)
}
