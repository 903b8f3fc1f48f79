// Package metrics defines and registers all custom Prometheus metrics for the
// pet service API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry at package init
// via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "petservice"

// UsersRegisteredTotal counts successful user registrations.
// Label:
//   - role: the role granted at registration (e.g. "USER", "ADMIN")
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of users registered, by initial role.",
	},
	[]string{"role"},
)

// RolesGrantedTotal counts role grants applied to existing users.
// Label:
//   - role: the granted role name
var RolesGrantedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roles_granted_total",
		Help:      "Total number of roles granted to existing users.",
	},
	[]string{"role"},
)

// PetsCreatedTotal counts pets added to the catalog.
// Label:
//   - species: the species reported on creation
var PetsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pets_created_total",
		Help:      "Total number of pets added to the catalog, by species.",
	},
	[]string{"species"},
)

// BookingsCreatedTotal counts service bookings.
// Label:
//   - offering: the booked offering's name
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of service bookings created, by offering.",
	},
	[]string{"offering"},
)

// BillsCreatedTotal counts recorded pet sales.
// Label:
//   - payment_method: the payment method reported on the bill
var BillsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bills_created_total",
		Help:      "Total number of pet sales recorded, by payment method.",
	},
	[]string{"payment_method"},
)
