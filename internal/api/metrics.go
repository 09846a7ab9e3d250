package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "twilio_manager",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "API requests by outcome (ok, network_error).",
		},
		[]string{"outcome"},
	)

	retriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "twilio_manager",
			Subsystem: "api",
			Name:      "request_retries_total",
			Help:      "Additional attempts made after a transient failure.",
		},
	)

	pagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "twilio_manager",
			Subsystem: "api",
			Name:      "pages_fetched_total",
			Help:      "List pages fetched to exhaustion, by resource.",
		},
		[]string{"resource"},
	)
)
