// Package metrics defines the prometheus instruments exported by the
// identity service on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Up reports service liveness; a background loop keeps it at 1.
	Up = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "identity_service_up",
		Help: "Is the identity service running.",
	})

	Registrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "identity_register_total",
		Help: "Total successful registrations.",
	})

	Logins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "identity_login_total",
		Help: "Total successful logins.",
	})
)
