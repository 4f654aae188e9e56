package pickup_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PublisherRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publisher_retries_total",
			Help: "Total number of publishes that needed a retry",
		},
		[]string{"topic", "result"},
	)

	PublisherRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "publisher_request_duration_seconds",
			Help:    "Duration of publishes including retries",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"topic", "result"},
	)
)
