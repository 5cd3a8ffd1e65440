// Package metrics defines and registers all custom Prometheus metrics for the
// telematics core. It is the single source of truth for metric names, labels,
// and help strings. Everything registers against the default registry via
// promauto; the /metrics route is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "telematics"

// ── Ingestion metrics ─────────────────────────────────────────────────────────

// BreadcrumbsIngestedTotal counts GPS samples persisted to the trail.
var BreadcrumbsIngestedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "breadcrumbs_ingested_total",
		Help:      "Total number of GPS breadcrumbs persisted.",
	},
)

// BreadcrumbsFlaggedTotal counts samples the spoofing detector marked
// suspicious (HIGH or CRITICAL finding).
var BreadcrumbsFlaggedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "breadcrumbs_flagged_total",
		Help:      "Total number of GPS breadcrumbs flagged as suspicious.",
	},
)

// ── Geofence event metrics ────────────────────────────────────────────────────

// GeofenceEventsProcessedTotal counts crossings that completed processing.
// Labels:
//   - type: geofence type (e.g. "pickup_facility")
//   - action: "enter", "exit", or "dwell"
var GeofenceEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geofence_events_processed_total",
		Help:      "Total number of geofence crossings processed.",
	},
	[]string{"type", "action"},
)

// EventsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var EventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// EventsQueueDepth tracks events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// EventProcessingDuration measures one crossing end-to-end.
// Label:
//   - action: the crossing action, or "error" on failure
var EventProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "event_processing_duration_seconds",
		Help:      "Duration of geofence event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"action"},
)

// TriggersEmittedTotal counts trigger instructions handed to the dispatch layer.
// Label:
//   - kind: trigger kind (e.g. "notification", "financial")
var TriggersEmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "triggers_emitted_total",
		Help:      "Total number of trigger results emitted, by kind.",
	},
	[]string{"kind"},
)

// ExitsSuppressedTotal counts facility EXITs swallowed by the signal-loss
// grace window.
var ExitsSuppressedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exits_suppressed_total",
		Help:      "Total number of geofence EXIT events suppressed as GPS artifacts.",
	},
)

// InvalidTransitionsTotal counts lifecycle transitions the state machine
// rejected. Useful for alerting on event-ordering anomalies.
// Labels:
//   - from: current load status
//   - to: requested load status
var InvalidTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invalid_transitions_total",
		Help:      "Total number of load status transitions rejected by the state machine.",
	},
	[]string{"from", "to"},
)

// ── Detention metrics ─────────────────────────────────────────────────────────

// DetentionOpenedTotal counts detention windows opened on facility ENTER.
// Label:
//   - location_type: "pickup" or "delivery"
var DetentionOpenedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "detention_opened_total",
		Help:      "Total number of detention records opened.",
	},
	[]string{"location_type"},
)

// DetentionClosedTotal counts detention windows closed on facility EXIT.
// Label:
//   - billable: "true" when dwell exceeded free time
var DetentionClosedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "detention_closed_total",
		Help:      "Total number of detention records closed, by billable outcome.",
	},
	[]string{"billable"},
)
