package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parseResultsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phone_number",
			Name:      "parse_results_total",
			Help:      "Total phone number parse attempts by result.",
		},
		[]string{"result"}, // ok, invalid_format, invalid_area_code, invalid_exchange, invalid_number
	)

	registrationsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phone_number",
			Name:      "registrations_total",
			Help:      "Total phone number registration attempts by outcome.",
		},
		[]string{"outcome"}, // created, duplicate, rejected, error
	)

	repositoryDurationHist = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "phone_number",
			Name:      "repository_duration_seconds",
			Help:      "Duration of phone number repository calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
