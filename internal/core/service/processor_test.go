package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetedge/telematics-core/internal/core/domain"
	"github.com/fleetedge/telematics-core/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubEventRepo struct {
	insertErr error
	events    []*domain.GeofenceEvent
	crossings []*domain.StateCrossing
}

func (r *stubEventRepo) InsertGeofenceEvent(_ context.Context, e *domain.GeofenceEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.events = append(r.events, e)
	return nil
}

func (r *stubEventRepo) InsertStateCrossing(_ context.Context, c *domain.StateCrossing) error {
	r.crossings = append(r.crossings, c)
	return nil
}

type stubGeofenceRepo struct {
	deactivated []string
}

func (r *stubGeofenceRepo) CreateBatch(_ context.Context, fences []*domain.Geofence) error {
	return nil
}

func (r *stubGeofenceRepo) ListForLoad(_ context.Context, _ string, _ bool) ([]*domain.Geofence, error) {
	return nil, nil
}

func (r *stubGeofenceRepo) DeactivateForLoad(_ context.Context, loadID string) error {
	r.deactivated = append(r.deactivated, loadID)
	return nil
}

type stubLoadRepo struct {
	statuses map[string]domain.LoadStatus
}

func newStubLoadRepo(loadID string, status domain.LoadStatus) *stubLoadRepo {
	return &stubLoadRepo{statuses: map[string]domain.LoadStatus{loadID: status}}
}

func (r *stubLoadRepo) GetStatus(_ context.Context, loadID string) (domain.LoadStatus, error) {
	status, ok := r.statuses[loadID]
	if !ok {
		return "", domain.ErrLoadNotFound
	}
	return status, nil
}

func (r *stubLoadRepo) SetStatus(_ context.Context, loadID string, status domain.LoadStatus) error {
	r.statuses[loadID] = status
	return nil
}

type stubGeotagRecorder struct {
	recorded []ports.RecordGeotagInput
}

func (r *stubGeotagRecorder) Record(_ context.Context, in ports.RecordGeotagInput) (string, error) {
	r.recorded = append(r.recorded, in)
	return "tag_1", nil
}

func (r *stubGeotagRecorder) ListForLoad(_ context.Context, _ string) ([]*domain.Geotag, error) {
	return nil, nil
}

func (r *stubGeotagRecorder) ListForDriver(_ context.Context, _ string, _ int) ([]*domain.Geotag, error) {
	return nil, nil
}

type stubProcDedup struct {
	dupResult bool
	dupErr    error
	marked    int
}

func (d *stubProcDedup) IsDuplicate(_ context.Context, _, _ string, _ domain.GeofenceAction, _ time.Time) (bool, error) {
	return d.dupResult, d.dupErr
}

func (d *stubProcDedup) Mark(_ context.Context, _, _ string, _ domain.GeofenceAction, _ time.Time) error {
	d.marked++
	return nil
}

type stubCompliance struct {
	result ports.ComplianceResult
	err    error
	calls  int
}

func (c *stubCompliance) CheckInterstate(_ context.Context, _, _, _ string) (ports.ComplianceResult, error) {
	c.calls++
	return c.result, c.err
}

// ---------------------------------------------------------------------------
// Harness
// ---------------------------------------------------------------------------

type procHarness struct {
	processor  *GeofenceEventProcessor
	events     *stubEventRepo
	geofences  *stubGeofenceRepo
	loads      *stubLoadRepo
	geotags    *stubGeotagRecorder
	detRepo    *stubDetentionRepo
	tracker    *SignalLossTracker
	compliance *stubCompliance
	dedup      *stubProcDedup
	clk        *movableClock
}

func newProcHarness(loadID string, status domain.LoadStatus) *procHarness {
	h := &procHarness{
		events:     &stubEventRepo{},
		geofences:  &stubGeofenceRepo{},
		loads:      newStubLoadRepo(loadID, status),
		geotags:    &stubGeotagRecorder{},
		detRepo:    newStubDetentionRepo(),
		compliance: &stubCompliance{result: ports.ComplianceResult{Status: ports.ComplianceOK}},
		dedup:      &stubProcDedup{},
		clk:        &movableClock{at: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)},
	}
	h.tracker = NewSignalLossTrackerWithClock(signalLossGrace, h.clk.now, zerolog.Nop())
	h.processor = NewGeofenceEventProcessor(
		h.events,
		h.geofences,
		h.loads,
		h.geotags,
		NewDetentionClock(h.detRepo, 75, zerolog.Nop()),
		h.tracker,
		h.compliance,
		h.dedup,
		zerolog.Nop(),
	)
	return h
}

func (h *procHarness) event(gfType domain.GeofenceType, action domain.GeofenceAction) ports.GeofenceEventInput {
	return ports.GeofenceEventInput{
		GeofenceID:   "gf_" + string(gfType),
		GeofenceType: gfType,
		DriverID:     "drv_1",
		LoadID:       "load_1",
		Action:       action,
		Location:     domain.Coordinates{Lat: 32.9, Lng: -97.0},
		Timestamp:    h.clk.at,
	}
}

func triggersOfKind(result *ports.ProcessResult, kind domain.TriggerKind) []domain.TriggerResult {
	var out []domain.TriggerResult
	for _, tr := range result.Triggers {
		if tr.Kind == kind {
			out = append(out, tr)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestProcessor_PickupEnter(t *testing.T) {
	h := newProcHarness("load_1", domain.StatusApproachingPickup)

	result, err := h.processor.Process(context.Background(), h.event(domain.GeofencePickupFacility, domain.ActionEnter))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.StatusChanged || result.NewStatus != domain.StatusAtPickup {
		t.Errorf("expected transition to at_pickup, got %+v", result)
	}
	if len(h.detRepo.records) != 1 || !h.detRepo.records[0].Open() {
		t.Error("expected an open detention record")
	}
	if len(h.geotags.recorded) != 1 || h.geotags.recorded[0].EventType != domain.GeotagArrivedPickup {
		t.Errorf("expected arrived_pickup geotag, got %+v", h.geotags.recorded)
	}
	if got := len(triggersOfKind(result, domain.TriggerNotification)); got != 4 {
		t.Errorf("pickup arrival notifies 4 parties, got %d", got)
	}
	if got := len(triggersOfKind(result, domain.TriggerGamification)); got != 1 {
		t.Errorf("expected gamification hook, got %d", got)
	}
	if len(h.events.events) != 1 {
		t.Error("raw crossing must be recorded")
	}
	if h.dedup.marked != 1 {
		t.Error("dedup key must be marked")
	}
}

func TestProcessor_PickupExitClosesDetention(t *testing.T) {
	h := newProcHarness("load_1", domain.StatusApproachingPickup)

	_, _ = h.processor.Process(context.Background(), h.event(domain.GeofencePickupFacility, domain.ActionEnter))

	h.clk.advance(150 * time.Minute)
	result, err := h.processor.Process(context.Background(), h.event(domain.GeofencePickupFacility, domain.ActionExit))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.StatusChanged || result.NewStatus != domain.StatusInTransit {
		t.Errorf("expected transition to in_transit, got %+v", result)
	}
	rec := h.detRepo.records[0]
	if rec.Open() {
		t.Fatal("detention record must be closed")
	}
	fin, ok := h.detRepo.finalized[rec.ID]
	if !ok {
		t.Fatal("expected finalized detention record")
	}
	if fin[0].(int) != 150 || fin[1].(int) != 30 {
		t.Errorf("dwell/detention = %v/%v, want 150/30", fin[0], fin[1])
	}
	if len(h.geotags.recorded) != 2 || h.geotags.recorded[1].EventType != domain.GeotagDepartedPickup {
		t.Errorf("expected departed_pickup geotag, got %+v", h.geotags.recorded)
	}
}

func TestProcessor_DeliveryExitSuppressedBySignalLoss(t *testing.T) {
	h := newProcHarness("load_1", domain.StatusApproachingDelivery)

	_, _ = h.processor.Process(context.Background(), h.event(domain.GeofenceDeliveryFacility, domain.ActionEnter))
	if h.loads.statuses["load_1"] != domain.StatusAtDelivery {
		t.Fatalf("setup: load should be at_delivery, is %s", h.loads.statuses["load_1"])
	}

	h.clk.advance(5 * time.Minute)
	h.tracker.ReportSignalLoss("drv_1")

	h.clk.advance(10 * time.Minute)
	geotagsBefore := len(h.geotags.recorded)
	result, err := h.processor.Process(context.Background(), h.event(domain.GeofenceDeliveryFacility, domain.ActionExit))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Suppressed {
		t.Fatal("exit inside the grace window must be suppressed")
	}
	if result.StatusChanged {
		t.Error("suppressed exit must not advance the lifecycle")
	}
	if h.loads.statuses["load_1"] != domain.StatusAtDelivery {
		t.Errorf("load status = %s, want at_delivery", h.loads.statuses["load_1"])
	}
	if !h.detRepo.records[0].Open() {
		t.Error("suppressed exit must not stop the detention clock")
	}
	if len(h.geotags.recorded) != geotagsBefore {
		t.Error("suppressed exit must not forge a departure geotag")
	}
	if len(result.Triggers) != 1 || result.Triggers[0].Kind != domain.TriggerSignalLossSuppress {
		t.Errorf("expected single suppression trigger, got %+v", result.Triggers)
	}
}

func TestProcessor_DeliveryExitAfterGraceHonored(t *testing.T) {
	h := newProcHarness("load_1", domain.StatusApproachingDelivery)

	_, _ = h.processor.Process(context.Background(), h.event(domain.GeofenceDeliveryFacility, domain.ActionEnter))
	h.tracker.ReportSignalLoss("drv_1")

	h.clk.advance(31 * time.Minute)
	result, err := h.processor.Process(context.Background(), h.event(domain.GeofenceDeliveryFacility, domain.ActionExit))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Suppressed {
		t.Fatal("exit past the grace window must be honored")
	}
	if !result.StatusChanged || result.NewStatus != domain.StatusDelivered {
		t.Errorf("expected delivered, got %+v", result)
	}
	if len(h.geofences.deactivated) != 1 || h.geofences.deactivated[0] != "load_1" {
		t.Error("delivery exit must retire the load's fence set")
	}
	if len(triggersOfKind(result, domain.TriggerFinancial)) != 1 {
		t.Error("expected settlement trigger on delivery")
	}
	if len(triggersOfKind(result, domain.TriggerGamification)) != 1 {
		t.Error("expected gamification trigger on delivery")
	}
}

func TestProcessor_DuplicateSkipped(t *testing.T) {
	h := newProcHarness("load_1", domain.StatusApproachingPickup)
	h.dedup.dupResult = true

	result, err := h.processor.Process(context.Background(), h.event(domain.GeofencePickupFacility, domain.ActionEnter))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Duplicate {
		t.Error("expected duplicate result")
	}
	if len(h.events.events) != 0 {
		t.Error("duplicate must not be recorded again")
	}
	if len(result.Triggers) != 0 {
		t.Error("duplicate must not emit triggers")
	}
	if h.loads.statuses["load_1"] != domain.StatusApproachingPickup {
		t.Error("duplicate must not advance the lifecycle")
	}
}

func TestProcessor_DedupCheckErrorProcessesAnyway(t *testing.T) {
	h := newProcHarness("load_1", domain.StatusApproachingPickup)
	h.dedup.dupErr = errors.New("redis down")

	result, err := h.processor.Process(context.Background(), h.event(domain.GeofencePickupFacility, domain.ActionEnter))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Duplicate {
		t.Error("failed dedup check must be treated as a miss")
	}
	if !result.StatusChanged {
		t.Error("event must be processed when dedup is unavailable")
	}
}

func TestProcessor_InvalidTransitionSilentlySkipped(t *testing.T) {
	// Delivery ENTER while the load is still posted: the state machine
	// rejects, the event still produces its other effects.
	h := newProcHarness("load_1", domain.StatusPosted)

	result, err := h.processor.Process(context.Background(), h.event(domain.GeofenceDeliveryFacility, domain.ActionEnter))
	if err != nil {
		t.Fatalf("rejected transition must not error: %v", err)
	}
	if result.StatusChanged {
		t.Error("posted -> at_delivery must be rejected")
	}
	if h.loads.statuses["load_1"] != domain.StatusPosted {
		t.Errorf("status = %s, want posted", h.loads.statuses["load_1"])
	}
	if len(h.detRepo.records) != 1 {
		t.Error("detention clock still starts on a physical arrival")
	}
}

func TestProcessor_StateBorderCrossing(t *testing.T) {
	h := newProcHarness("load_1", domain.StatusInTransit)
	h.compliance.result = ports.ComplianceResult{Status: ports.ComplianceWarn, Detail: "NY HUT permit required before operating"}

	event := h.event(domain.GeofenceStateBorder, domain.ActionEnter)
	event.FromState = "NJ"
	event.ToState = "NY"

	result, err := h.processor.Process(context.Background(), event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(h.events.crossings) != 1 {
		t.Fatalf("expected exactly one state crossing, got %d", len(h.events.crossings))
	}
	if h.events.crossings[0].FromState != "NJ" || h.events.crossings[0].ToState != "NY" {
		t.Errorf("crossing states wrong: %+v", h.events.crossings[0])
	}
	if h.compliance.calls != 1 {
		t.Errorf("compliance checked %d times, want 1", h.compliance.calls)
	}
	if len(triggersOfKind(result, domain.TriggerCompliance)) != 1 {
		t.Error("expected one compliance trigger")
	}
	// Warn surfaces to the driver.
	if len(triggersOfKind(result, domain.TriggerNotification)) != 1 {
		t.Error("warn result must notify the driver")
	}
	if len(h.geotags.recorded) != 1 || h.geotags.recorded[0].EventType != domain.GeotagStateCrossing {
		t.Errorf("expected state_crossing geotag, got %+v", h.geotags.recorded)
	}
	if h.geotags.recorded[0].Metadata["to_state"] != "NY" {
		t.Error("crossing geotag must carry the states")
	}
}

func TestProcessor_StateBorderMissingStatesIgnored(t *testing.T) {
	h := newProcHarness("load_1", domain.StatusInTransit)

	event := h.event(domain.GeofenceStateBorder, domain.ActionEnter)
	result, _ := h.processor.Process(context.Background(), event)

	if len(h.events.crossings) != 0 {
		t.Error("crossing without states must not be recorded")
	}
	if len(triggersOfKind(result, domain.TriggerCompliance)) != 0 {
		t.Error("crossing without states must not trigger compliance")
	}
}

func TestProcessor_DwellPastFreeTime(t *testing.T) {
	h := newProcHarness("load_1", domain.StatusAtPickup)

	event := h.event(domain.GeofencePickupFacility, domain.ActionDwell)
	event.DwellSeconds = 7500

	result, err := h.processor.Process(context.Background(), event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	billing := triggersOfKind(result, domain.TriggerDetentionBilling)
	if len(billing) != 1 {
		t.Fatalf("expected one billing trigger, got %d", len(billing))
	}
	payload := billing[0].Payload.(domain.DetentionBillingPayload)
	if payload.DwellMinutes != 125 {
		t.Errorf("dwell minutes = %d, want 125", payload.DwellMinutes)
	}
	if len(triggersOfKind(result, domain.TriggerNotification)) != 1 {
		t.Error("billing dwell alerts all parties")
	}
}

func TestProcessor_DwellInsideFreeTimeQuiet(t *testing.T) {
	h := newProcHarness("load_1", domain.StatusAtPickup)

	event := h.event(domain.GeofencePickupFacility, domain.ActionDwell)
	event.DwellSeconds = 3600

	result, _ := h.processor.Process(context.Background(), event)
	if len(result.Triggers) != 0 {
		t.Errorf("dwell inside free time must be quiet, got %+v", result.Triggers)
	}
}

func TestProcessor_WaypointEnter(t *testing.T) {
	h := newProcHarness("load_1", domain.StatusInTransit)

	result, _ := h.processor.Process(context.Background(), h.event(domain.GeofenceWaypoint, domain.ActionEnter))

	ws := triggersOfKind(result, domain.TriggerWebsocket)
	if len(ws) != 1 {
		t.Fatalf("expected websocket trigger, got %+v", result.Triggers)
	}
	payload := ws[0].Payload.(domain.WebsocketPayload)
	if payload.Channel != "load:load_1" || payload.Event != "waypoint_reached" {
		t.Errorf("websocket payload wrong: %+v", payload)
	}
	if result.StatusChanged {
		t.Error("waypoints do not advance the lifecycle")
	}
}

func TestProcessor_HazmatZoneEnter(t *testing.T) {
	h := newProcHarness("load_1", domain.StatusInTransit)

	result, _ := h.processor.Process(context.Background(), h.event(domain.GeofenceHazmatZone, domain.ActionEnter))

	if got := len(triggersOfKind(result, domain.TriggerNotification)); got != 3 {
		t.Errorf("hazmat entry notifies driver, safety and compliance, got %d", got)
	}
	if len(h.geotags.recorded) != 1 || h.geotags.recorded[0].Category != domain.CategorySafety {
		t.Errorf("expected safety geotag, got %+v", h.geotags.recorded)
	}
}

func TestProcessor_ApproachEnterNotifies(t *testing.T) {
	h := newProcHarness("load_1", domain.StatusEnRouteToPickup)

	result, _ := h.processor.Process(context.Background(), h.event(domain.GeofencePickupApproach, domain.ActionEnter))

	if !result.StatusChanged || result.NewStatus != domain.StatusApproachingPickup {
		t.Errorf("expected approaching_pickup, got %+v", result)
	}
	if got := len(triggersOfKind(result, domain.TriggerNotification)); got != 2 {
		t.Errorf("approach notifies terminal and shipper, got %d", got)
	}
	if len(h.geotags.recorded) != 0 {
		t.Error("approach circles do not stamp geotags")
	}
}

func TestProcessor_EventStoreFailureDegrades(t *testing.T) {
	h := newProcHarness("load_1", domain.StatusApproachingPickup)
	h.events.insertErr = errors.New("mongo down")

	result, err := h.processor.Process(context.Background(), h.event(domain.GeofencePickupFacility, domain.ActionEnter))
	if err != nil {
		t.Fatalf("audit insert failure must not fail the event: %v", err)
	}
	if !result.StatusChanged {
		t.Error("lifecycle must advance even when the audit store is down")
	}
}
