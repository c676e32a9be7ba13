// Package metrics holds the Prometheus instruments for the discovery path
// and the query path. Everything registers on the default registry and is
// served by the HTTP sidecar's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DiscoveryEvents counts discovery events applied to the topic caches,
	// by operation (add/remove) and endpoint side (writer/reader).
	DiscoveryEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "meshgraph",
		Subsystem: "discovery",
		Name:      "events_total",
		Help:      "Discovery events applied to the topic caches.",
	}, []string{"op", "endpoint"})

	// UnmatchedRemovals counts remove events that matched no recorded
	// registration. These are expected under event races and are no-ops.
	UnmatchedRemovals = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "meshgraph",
		Subsystem: "discovery",
		Name:      "unmatched_removals_total",
		Help:      "Remove events that matched no recorded registration.",
	})

	// GraphQueries counts graph queries by kind.
	GraphQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "meshgraph",
		Subsystem: "graph",
		Name:      "queries_total",
		Help:      "Graph queries served, by query kind.",
	}, []string{"query"})
)
