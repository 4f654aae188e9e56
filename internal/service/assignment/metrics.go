package assignment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pickup_assignment_operations_total",
		Help: "Total number of pickup workflow mutations by outcome",
	},
	[]string{"operation", "outcome"},
)
