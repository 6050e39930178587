// Package metrics defines and registers all custom Prometheus metrics for the
// inventory API. It is the single source of truth for metric names, labels,
// and help strings.
//
// The variables register themselves with the default registry at init time;
// the router exposes them on /metrics together with the per-request metrics
// collected by the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts signup attempts.
// Label:
//   - result: "created", "conflict" or "error"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensVerifiedTotal counts bearer token verifications performed by the auth
// middleware.
// Label:
//   - result: "ok", "expired", "invalid" or "malformed"
var TokensVerifiedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_verified_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// ── Item metrics ──────────────────────────────────────────────────────────────

// ItemsListedTotal counts list-endpoint requests that returned a page.
var ItemsListedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_listed_total",
		Help:      "Total number of item list pages served.",
	},
)

// ItemCacheTotal counts single-item cache lookups.
// Label:
//   - result: "hit" or "miss"
var ItemCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "item_cache_total",
		Help:      "Total number of item cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
