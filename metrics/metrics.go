package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Paste lifecycle counters, exposed on /metrics.
var (
	PastesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkpaste_pastes_created_total",
		Help: "Total number of pastes created.",
	})

	PastesViewed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkpaste_pastes_viewed_total",
		Help: "Total number of successful paste views.",
	})

	PastesBurned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkpaste_pastes_burned_total",
		Help: "Total number of pastes deleted by burn-after-read.",
	})

	PastesExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inkpaste_pastes_expired_total",
		Help: "Total number of expired pastes deleted on access.",
	})
)
