package service

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// signalLossGrace is the window during which a geofence EXIT is presumed to
// be a GPS artifact rather than a real departure. The boundary is hard: one
// second past the window, the EXIT is honored.
const signalLossGrace = 1800 * time.Second

// SignalLossState is the per-driver memory of "was I inside a geofence when
// I lost signal".
type SignalLossState struct {
	DriverID     string
	GeofenceID   string
	GeofenceType domain.GeofenceType
	LoadID       string
	WasInside    bool
	LastLat      float64
	LastLng      float64
	LastSignalAt time.Time
	SignalLostAt *time.Time
}

// SignalLossTracker suppresses false EXIT events caused by GPS dropout inside
// steel-walled facilities. State is intentionally process-local and not
// durably persisted: a restart loses in-flight grace windows. That trade-off
// is accepted for simplicity and documented, not a bug.
type SignalLossTracker struct {
	mu      sync.Mutex
	drivers map[string]*SignalLossState
	grace   time.Duration
	now     func() time.Time
	log     zerolog.Logger
}

// NewSignalLossTracker returns an isolated tracker instance. Tests construct
// their own; nothing here is package-level state.
func NewSignalLossTracker(log zerolog.Logger) *SignalLossTracker {
	return &SignalLossTracker{
		drivers: make(map[string]*SignalLossState),
		grace:   signalLossGrace,
		now:     time.Now,
		log:     log,
	}
}

// NewSignalLossTrackerWithClock overrides the grace window and clock, for tests.
func NewSignalLossTrackerWithClock(grace time.Duration, now func() time.Time, log zerolog.Logger) *SignalLossTracker {
	t := NewSignalLossTracker(log)
	if grace > 0 {
		t.grace = grace
	}
	if now != nil {
		t.now = now
	}
	return t
}

// UpdateState overwrites the tracked state for a driver and clears any
// pending loss. Called on every real ENTER/EXIT observed.
func (t *SignalLossTracker) UpdateState(driverID string, lat, lng float64, geofenceID string, geofenceType domain.GeofenceType, isInside bool, loadID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.drivers[driverID] = &SignalLossState{
		DriverID:     driverID,
		GeofenceID:   geofenceID,
		GeofenceType: geofenceType,
		LoadID:       loadID,
		WasInside:    isInside,
		LastLat:      lat,
		LastLng:      lng,
		LastSignalAt: t.now(),
		SignalLostAt: nil,
	}
}

// ReportSignalLoss stamps the moment signal was lost. Idempotent: a second
// report while already lost keeps the original timestamp, so the grace window
// is measured from the first dropout.
func (t *SignalLossTracker) ReportSignalLoss(driverID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.drivers[driverID]
	if !ok {
		state = &SignalLossState{DriverID: driverID}
		t.drivers[driverID] = state
	}
	if state.SignalLostAt != nil {
		return
	}
	lostAt := t.now()
	state.SignalLostAt = &lostAt
	t.log.Debug().Str("driver_id", driverID).Time("lost_at", lostAt).Msg("signal loss recorded")
}

// ShouldSuppressExit reports whether an EXIT for geofenceID should be treated
// as a GPS artifact: a loss is recorded, the driver was inside that same
// geofence, and the loss is within the grace window.
func (t *SignalLossTracker) ShouldSuppressExit(driverID, geofenceID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.drivers[driverID]
	if !ok || state.SignalLostAt == nil || !state.WasInside || state.GeofenceID != geofenceID {
		return false
	}
	return t.now().Sub(*state.SignalLostAt) <= t.grace
}

// ClearSignalLoss resets the loss marker, called on fresh ENTER.
func (t *SignalLossTracker) ClearSignalLoss(driverID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if state, ok := t.drivers[driverID]; ok {
		state.SignalLostAt = nil
	}
}

// State returns a copy of the tracked state for a driver, or nil.
func (t *SignalLossTracker) State(driverID string) *SignalLossState {
	t.mu.Lock()
	defer t.mu.Unlock()

	state, ok := t.drivers[driverID]
	if !ok {
		return nil
	}
	copied := *state
	if state.SignalLostAt != nil {
		lostAt := *state.SignalLostAt
		copied.SignalLostAt = &lostAt
	}
	return &copied
}
