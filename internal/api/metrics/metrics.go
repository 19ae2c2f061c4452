// Package metrics defines and registers all custom Prometheus metrics for the
// Innerview backend. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "innerview"

// ── Identity metrics ──────────────────────────────────────────────────────────

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure" (failures are not broken down further to
//     keep the metric as enumeration-resistant as the API surface)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts completed registrations.
// Label:
//   - role: the role assigned to the new account
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered users, by role.",
	},
	[]string{"role"},
)

// PermissionChecksTotal counts RBAC evaluations.
// Label:
//   - result: "allowed" or "denied"
var PermissionChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "permission_checks_total",
		Help:      "Total number of permission checks, by result.",
	},
	[]string{"result"},
)

// PasswordHashDuration measures bcrypt hashing latency, the one CPU-bound
// step in the registration path.
var PasswordHashDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "password_hash_duration_seconds",
		Help:      "Duration of password hashing during registration.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts audit events written, by action.
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events recorded, by action.",
	},
	[]string{"action"},
)

// AuditQueueDepth tracks pending events in each dispatcher worker channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ── Record metrics ────────────────────────────────────────────────────────────

// StudentsCreatedTotal counts newly registered students.
var StudentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "students_created_total",
		Help:      "Total number of students created.",
	},
)

// InterventionTransitionsTotal counts intervention status changes.
// Label:
//   - status: the new status applied ("ACTIVE", "COMPLETED", "CANCELLED")
var InterventionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "intervention_transitions_total",
		Help:      "Total number of intervention status transitions, by new status.",
	},
	[]string{"status"},
)
