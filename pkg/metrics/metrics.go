package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	hireloopIdentity = "hireloop_identity"

	onboardingStatusChangesTotal = "onboarding_status_changes_total"
	accountBootstrapsTotal       = "account_bootstraps_total"
	documentUploadsTotal         = "document_uploads_total"

	// Labels
	statusLabel  = "status"
	outcomeLabel = "outcome"
)

var onboardingStatusChangesMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: hireloopIdentity,
		Name:      onboardingStatusChangesTotal,
		Help:      "number of onboarding status changes, partitioned by the new status",
	},
	[]string{statusLabel},
)

var accountBootstrapsMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: hireloopIdentity,
		Name:      accountBootstrapsTotal,
		Help:      "number of account bootstrap calls, partitioned by whether rows were created or found",
	},
	[]string{outcomeLabel},
)

var documentUploadsMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: hireloopIdentity,
		Name:      documentUploadsTotal,
		Help:      "number of document uploads, partitioned by outcome",
	},
	[]string{outcomeLabel},
)

func IncreaseOnboardingStatusChange(status string) {
	onboardingStatusChangesMetric.With(prometheus.Labels{statusLabel: status}).Inc()
}

func IncreaseAccountBootstrap(outcome string) {
	accountBootstrapsMetric.With(prometheus.Labels{outcomeLabel: outcome}).Inc()
}

func IncreaseDocumentUpload(outcome string) {
	documentUploadsMetric.With(prometheus.Labels{outcomeLabel: outcome}).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(onboardingStatusChangesMetric)
	prometheus.MustRegister(accountBootstrapsMetric)
	prometheus.MustRegister(documentUploadsMetric)
}
