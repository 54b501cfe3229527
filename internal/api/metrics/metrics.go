// Package metrics defines and registers all custom Prometheus metrics for the
// travel platform API. It is the single source of truth for metric names,
// labels, and help strings; metrics register themselves with the default
// registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travel"

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: the role of the new account ("user", "vendor", "admin")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful account registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ChatRepliesTotal counts assistant replies.
// Label:
//   - result: "matched" when a keyword rule fired, "fallback" otherwise
var ChatRepliesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_replies_total",
		Help:      "Total number of chat replies served, by match result.",
	},
	[]string{"result"},
)

// HotelsCreatedTotal counts catalog entries created through the API.
var HotelsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hotels_created_total",
		Help:      "Total number of hotels added to the catalog.",
	},
)
