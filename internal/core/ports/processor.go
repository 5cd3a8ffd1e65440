package ports

import (
	"context"
	"time"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// GeofenceEventInput is the DTO passed from the transport layer (or the
// dispatcher) to the event processor.
type GeofenceEventInput struct {
	GeofenceID   string
	GeofenceType domain.GeofenceType
	DriverID     string
	LoadID       string
	Action       domain.GeofenceAction
	Location     domain.Coordinates
	DwellSeconds int
	Timestamp    time.Time
	// FromState/ToState are set on state-border crossings when known.
	FromState string
	ToState   string
}

// ProcessResult is the outcome of one processed event.
type ProcessResult struct {
	// Triggers is the ordered list of instructions for the dispatch layer.
	Triggers []domain.TriggerResult
	// StatusChanged reports whether the load lifecycle advanced.
	StatusChanged bool
	NewStatus     domain.LoadStatus
	// Suppressed reports that the event was swallowed by the signal-loss
	// grace window.
	Suppressed bool
	// Duplicate reports that dedup skipped an already-processed event.
	Duplicate bool
}

// EventProcessor consumes one ENTER/EXIT/DWELL crossing and drives the load
// lifecycle, the detention clock, and the trigger fan-out description.
type EventProcessor interface {
	Process(ctx context.Context, event GeofenceEventInput) (*ProcessResult, error)
}
