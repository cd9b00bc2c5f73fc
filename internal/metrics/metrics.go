package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TicketTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_ticket_transitions_total",
			Help: "Ticket status changes by kind, from and to status",
		},
		[]string{"kind", "from", "to"},
	)

	UploadedBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_uploaded_bytes_total",
			Help: "Bytes stored by upload scope",
		},
		[]string{"scope"},
	)

	TicketReturns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_ticket_returns_total",
			Help: "Completed documents returned, by ticket kind",
		},
		[]string{"kind"},
	)

	Purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_assessment_purchases_total",
			Help: "Pre-prepared assessment purchases by catalog variant",
		},
		[]string{"variant"},
	)

	RecoveredIntents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_recovered_intents_total",
			Help: "Pending dual-write intents replayed, by outcome",
		},
		[]string{"outcome"},
	)

	BestEffortFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_best_effort_failures_total",
			Help: "Secondary steps that failed without failing the request",
		},
		[]string{"step"},
	)
)
