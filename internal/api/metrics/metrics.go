// Package metrics defines all custom Prometheus metrics for the shopping
// assistant API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "assistant"

// ── Inference gateway metrics ────────────────────────────────────────────────

// BackendAttemptsTotal counts individual backend attempts inside the fallback
// chain.
// Labels:
//   - model: the backend candidate attempted (e.g. "gemini-1.5-flash")
//   - result: "success" or "error"
var BackendAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_attempts_total",
		Help:      "Total number of inference backend attempts, by model and result.",
	},
	[]string{"model", "result"},
)

// FallbackExhaustedTotal counts queries for which every backend candidate
// failed.
var FallbackExhaustedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fallback_exhausted_total",
		Help:      "Total number of queries that exhausted the whole fallback chain.",
	},
)

// QueryDuration measures end-to-end latency of one assistant query, including
// all fallback attempts.
// Label:
//   - outcome: "success" or "error"
var QueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "query_duration_seconds",
		Help:      "Duration of assistant queries from dispatch to final outcome.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)

// ── Admin directory metrics ──────────────────────────────────────────────────

// AdminActionsTotal counts admin mutations on the user directory.
// Label:
//   - action: "update" or "delete"
var AdminActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_actions_total",
		Help:      "Total number of admin mutations applied to the user directory.",
	},
	[]string{"action"},
)

// StatsCacheTotal counts stats-cache lookups by result.
// Label:
//   - result: "hit" or "miss"
var StatsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_total",
		Help:      "Total number of admin stats cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── Audit metrics ────────────────────────────────────────────────────────────

// AuditEventsTotal counts audit events by outcome of persistence.
// Label:
//   - result: "recorded" or "error"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events processed, by persistence result.",
	},
	[]string{"result"},
)
