// Package metrics holds the Prometheus instruments for the guest workflows.
// Collectors register with the default registry and are served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RegistrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fiesta_registrations_total",
			Help: "Registration attempts by outcome (created, duplicate, invalid, error).",
		}, []string{"outcome"})

	AdmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fiesta_admissions_total",
			Help: "Door scans by result (granted, already_admitted, invalid).",
		}, []string{"result"})

	GuestsDeletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fiesta_guests_deleted_total",
			Help: "Guest records removed from the admin panel.",
		})
)

func init() {
	prometheus.MustRegister(
		RegistrationsTotal,
		AdmissionsTotal,
		GuestsDeletedTotal,
	)
}
