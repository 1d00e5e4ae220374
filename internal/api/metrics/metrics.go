// Package metrics defines the domain Prometheus collectors for the booking
// API. HTTP request metrics come from echoprometheus in the router; the
// counters here track what the requests did.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "omsorgsplus"

// ── Staff ─────────────────────────────────────────────────────────────────────

// StaffCreatedTotal counts staff profiles created through the API.
var StaffCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "staff_created_total",
		Help:      "Total number of staff profiles created.",
	},
)

// RatingsSubmittedTotal counts accepted ratings.
// Label:
//   - stars: "1" … "5"
var RatingsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_submitted_total",
		Help:      "Total number of ratings recorded, by star value.",
	},
	[]string{"stars"},
)

// ── Bookings ──────────────────────────────────────────────────────────────────

var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings stored.",
	},
)

// ── Notifications ─────────────────────────────────────────────────────────────

// NotificationsTotal counts operator emails.
// Labels:
//   - kind: "booking" or "contact"
//   - result: "sent" or "failed"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of operator notification emails, by kind and result.",
	},
	[]string{"kind", "result"},
)

// ObserveNotification records one notification attempt.
func ObserveNotification(kind string, sent bool) {
	result := "sent"
	if !sent {
		result = "failed"
	}
	NotificationsTotal.WithLabelValues(kind, result).Inc()
}
