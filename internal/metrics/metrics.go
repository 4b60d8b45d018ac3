// Package metrics exposes the engine counters scraped from /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "placebetween"

var (
	CompletionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "completions_total",
			Help:      "Completions handled, by source and view.",
		},
		[]string{"source", "view"},
	)

	PointsAwardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "points_awarded_total",
			Help:      "Points written to ledgers, by origin of the value.",
		},
		[]string{"origin"},
	)

	TodaySetRebuildsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "todayset_rebuilds_total",
			Help:      "Frozen sets rebuilt because a persisted id no longer resolves.",
		},
		[]string{"phase"},
	)

	RemoteFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "remote",
			Name:      "failures_total",
			Help:      "Remote API calls that failed, by operation.",
		},
		[]string{"op"},
	)
)
