package recommender

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	MatrixRebuildsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommender_matrix_rebuilds_total",
			Help: "Count of full interaction matrix rebuilds.",
		},
	)

	RecommendServedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommender_served_total",
			Help: "Count of recommendation computations served.",
		},
	)
)

func init() {
	prometheus.MustRegister(MatrixRebuildsTotal, RecommendServedTotal)
}
