package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AuthzDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lecturevault_authz_decisions_total",
		Help: "Authorization policy decisions by outcome.",
	}, []string{"outcome"})

	LoginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lecturevault_logins_total",
		Help: "Successful OIDC logins.",
	})

	ContentWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lecturevault_content_writes_total",
		Help: "Create/update/delete operations by entity.",
	}, []string{"entity", "op"})
)

// RecordDecision increments the authz decision counter.
func RecordDecision(allowed bool) {
	if allowed {
		AuthzDecisionsTotal.WithLabelValues("allow").Inc()
	} else {
		AuthzDecisionsTotal.WithLabelValues("deny").Inc()
	}
}
