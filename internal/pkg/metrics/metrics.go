// Package metrics registers the service's Prometheus collectors. Everything
// lives on the default registry so promhttp can serve it unchanged.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "voucherhub",
		Subsystem: "cache",
		Name:      "refresh_total",
		Help:      "Cache refresh attempts per collection and outcome.",
	}, []string{"collection", "outcome"})

	CachedVouchers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "voucherhub",
		Subsystem: "cache",
		Name:      "vouchers",
		Help:      "Vouchers currently held in the cache snapshot.",
	})

	CachedGuests = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "voucherhub",
		Subsystem: "cache",
		Name:      "guests",
		Help:      "Guests currently held in the cache snapshot.",
	})

	ControllerRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "voucherhub",
		Subsystem: "controller",
		Name:      "requests_total",
		Help:      "Controller API calls per operation and outcome.",
	}, []string{"operation", "outcome"})

	ControllerRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "voucherhub",
		Subsystem: "controller",
		Name:      "session_retries_total",
		Help:      "Operations retried after a stale-session response.",
	})
)

const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
