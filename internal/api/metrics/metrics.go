// Package metrics defines and registers all custom Prometheus metrics for the
// GlobalWay tracking service. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry via promauto at
// package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tracking"

// ── Geocoding metrics ─────────────────────────────────────────────────────────

// GeocodeLookupsTotal counts outbound geocode lookups.
// Label:
//   - result: "hit" (resolved), "miss" (no match), "error" (lookup failed),
//     "cached" (served from the Redis cache), "empty" (blank input, no call)
var GeocodeLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geocode_lookups_total",
		Help:      "Total number of geocode lookups, labelled by result.",
	},
	[]string{"result"},
)

// GeocodeDuration measures the latency of a single external geocode call.
var GeocodeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "geocode_duration_seconds",
		Help:      "Duration of external geocode lookups.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Resolution metrics ────────────────────────────────────────────────────────

// ResolutionsDiscardedTotal counts coordinate resolutions that completed
// after a newer shipment had been accepted and were therefore discarded.
var ResolutionsDiscardedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolutions_discarded_total",
		Help:      "Total number of stale coordinate resolutions discarded.",
	},
)

// ── Document metrics ──────────────────────────────────────────────────────────

// DocumentsGeneratedTotal counts generated documents.
// Label:
//   - kind: "details" or "invoice"
var DocumentsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_generated_total",
		Help:      "Total number of printable documents generated, by kind.",
	},
	[]string{"kind"},
)

// ── Share metrics ─────────────────────────────────────────────────────────────

// ShareLinksCreatedTotal counts minted share links.
var ShareLinksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "share_links_created_total",
		Help:      "Total number of share links created.",
	},
)
