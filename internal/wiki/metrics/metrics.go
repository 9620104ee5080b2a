// Package metrics declares the Prometheus instruments of the wiki service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Up reports service liveness.
	Up = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wiki_service_up",
		Help: "1 while the wiki service is running.",
	})

	// ArticlesCreated counts successfully created articles.
	ArticlesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wiki_articles_total",
		Help: "Total number of articles created.",
	})

	// AuthzDenied counts ownership denials by action (edit, delete).
	AuthzDenied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wiki_authz_denied_total",
		Help: "Total number of requests denied by the ownership policy.",
	}, []string{"action"})

	// VerifyRejected counts tokens definitively rejected by the identity
	// service.
	VerifyRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wiki_verify_rejected_total",
		Help: "Total number of tokens rejected by the identity service.",
	})

	// VerifyRetriesExhausted counts verification attempts abandoned because
	// the identity service stayed unreachable for the whole retry budget.
	VerifyRetriesExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wiki_verify_retries_exhausted_total",
		Help: "Total number of verifications abandoned after exhausting retries.",
	})
)
