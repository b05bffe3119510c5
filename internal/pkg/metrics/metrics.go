// Package metrics defines and registers all custom Prometheus metrics for the
// SariCare booking API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation and exposed on GET /metrics next to the HTTP metrics
// collected by echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "saricare"

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - owner: "identified" or "guest"
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by owner kind.",
	},
	[]string{"owner"},
)

// BookingTransitionsTotal counts accepted lifecycle transitions.
// Labels:
//   - axis: "status" or "payment"
//   - to:   the new value (e.g. "Confirmed")
var BookingTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_transitions_total",
		Help:      "Total number of booking lifecycle transitions applied.",
	},
	[]string{"axis", "to"},
)

// BookingTransitionsRejectedTotal counts transitions refused by the state machine.
var BookingTransitionsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_transitions_rejected_total",
		Help:      "Total number of booking transitions rejected as invalid.",
	},
	[]string{"axis"},
)

// BookingEventsErrorsTotal counts audit events that could not be persisted.
var BookingEventsErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_events_errors_total",
		Help:      "Total number of booking audit events that failed to persist.",
	},
)

// BookingEventsQueueDepth tracks the events waiting in each dispatcher worker channel.
var BookingEventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "booking_events_queue_depth",
		Help:      "Current number of booking events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Contact metrics ───────────────────────────────────────────────────────────

var ContactsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contacts_created_total",
		Help:      "Total number of contact messages submitted.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing_token", "invalid_token", "unknown_subject", "forbidden", "bad_credentials"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of rejected authentication or authorization attempts.",
	},
	[]string{"reason"},
)

// AdminSeedTotal counts admin bootstrap outcomes.
// Label:
//   - result: "created", "exists", "duplicate" or "error"
var AdminSeedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_seed_total",
		Help:      "Total number of admin bootstrap attempts, by outcome.",
	},
	[]string{"result"},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	},
)
