// Package metrics defines the Prometheus metrics for identity setup. All
// collectors are registered with the default registry on import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gameauth"

const (
	ResultAdded     = "added"
	ResultDuplicate = "duplicate"
	ResultRemoved   = "removed"
	ResultAbsent    = "absent"
)

// UsersCreatedTotal counts identities built by the identity service.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user identities created.",
	},
)

// RoleGrantsTotal counts role grants.
// Label:
//   - result: "added" (new membership) or "duplicate" (already held)
var RoleGrantsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_grants_total",
		Help:      "Total number of role grants, labelled by result (added/duplicate).",
	},
	[]string{"result"},
)

// RoleRevocationsTotal counts role revocations.
// Label:
//   - result: "removed" or "absent"
var RoleRevocationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_revocations_total",
		Help:      "Total number of role revocations, labelled by result (removed/absent).",
	},
	[]string{"result"},
)

// IDAllocationErrorsTotal counts failed ID allocations.
// Label:
//   - backend: "memory" or "redis"
var IDAllocationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "id_allocation_errors_total",
		Help:      "Total number of identifier allocations that failed.",
	},
	[]string{"backend"},
)
