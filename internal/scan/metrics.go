package scan

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	scansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "twilio_manager",
			Subsystem: "scan",
			Name:      "runs_total",
			Help:      "Completed scans by terminal state (done, failed).",
		},
		[]string{"result"},
	)

	numbersCheckedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "twilio_manager",
			Subsystem: "scan",
			Name:      "numbers_checked_total",
			Help:      "Numbers probed for activity across all scans.",
		},
	)
)
