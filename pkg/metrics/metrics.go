// Package metrics keeps the prometheus collectors of the issuance workflow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "assetnote"

const (
	OutcomeConfirmed = "confirmed"

	LookupFound    = "found"
	LookupNotFound = "not_found"
)

var (
	issuanceTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "issuance_total",
			Help:      "Asset creation requests by outcome",
		},
		[]string{"outcome"},
	)

	confirmationPolls = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "confirmation_polls",
			Help:      "Pending transaction polls until confirmation",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10},
		},
	)

	metadataLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "metadata_lookups_total",
			Help:      "Asset metadata lookups by result",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(
		issuanceTotal,
		confirmationPolls,
		metadataLookups,
	)
}

// Issuance counts a finished create request. Outcome is OutcomeConfirmed or an error kind.
func Issuance(outcome string) {
	issuanceTotal.WithLabelValues(outcome).Inc()
}

func ConfirmationPolls(polls uint64) {
	confirmationPolls.Observe(float64(polls))
}

func MetadataLookup(found bool) {
	if found {
		metadataLookups.WithLabelValues(LookupFound).Inc()
		return
	}
	metadataLookups.WithLabelValues(LookupNotFound).Inc()
}
