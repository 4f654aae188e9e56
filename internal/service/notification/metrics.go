package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsRelayedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pickup_events_relayed_total",
			Help: "Total number of assignment events published to the change feed",
		},
	)

	RelayCursor = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pickup_events_relay_cursor",
			Help: "Id of the last published assignment event",
		},
	)
)
