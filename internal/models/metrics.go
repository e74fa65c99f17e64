package models

import "github.com/prometheus/client_golang/prometheus"

// Collectors contains the domain metrics. They are registered by the router.
var Collectors = []prometheus.Collector{
	verificationCount,
	documentCount,
}

var verificationCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "transaction_verifications_total",
		Help: "How many transaction verifications were attempted, partitioned by decision, policy and result.",
	},
	[]string{"decision", "policy", "result"},
)

var documentCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "foreign_donation_documents_total",
		Help: "How many foreign donation documents were generated, partitioned by document kind and result.",
	},
	[]string{"kind", "result"},
)

// result returns the metric label for an error.
func result(err error) string {
	if err == nil {
		return "success"
	}
	return "failure"
}
