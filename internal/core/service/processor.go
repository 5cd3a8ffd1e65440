package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetedge/telematics-core/internal/api/metrics"
	"github.com/fleetedge/telematics-core/internal/core/domain"
	"github.com/fleetedge/telematics-core/internal/core/ports"
)

// DedupChecker abstracts the exactly-once store (Redis). Duplicate crossings
// are skipped before any side effect fires.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, driverID, geofenceID string, action domain.GeofenceAction, ts time.Time) (bool, error)
	Mark(ctx context.Context, driverID, geofenceID string, action domain.GeofenceAction, ts time.Time) error
}

// geotagMapping maps (geofence type, action) pairs to the geotag they stamp.
// Pairs not listed produce no geotag.
var geotagMapping = map[domain.GeofenceType]map[domain.GeofenceAction]struct {
	eventType string
	category  domain.GeotagCategory
}{
	domain.GeofencePickupFacility: {
		domain.ActionEnter: {domain.GeotagArrivedPickup, domain.CategoryLifecycle},
		domain.ActionExit:  {domain.GeotagDepartedPickup, domain.CategoryLifecycle},
	},
	domain.GeofenceDeliveryFacility: {
		domain.ActionEnter: {domain.GeotagArrivedDelivery, domain.CategoryLifecycle},
		domain.ActionExit:  {domain.GeotagDepartedDelivery, domain.CategoryLifecycle},
	},
	domain.GeofenceStateBorder: {
		domain.ActionEnter: {domain.GeotagStateCrossing, domain.CategoryCompliance},
	},
	domain.GeofenceHazmatZone: {
		domain.ActionEnter: {domain.GeotagHazmatZoneEntry, domain.CategorySafety},
	},
	domain.GeofenceWeighStation: {
		domain.ActionEnter: {domain.GeotagWeighStationAppr, domain.CategoryCompliance},
	},
}

// dwellBillingThresholdSeconds: facility dwell heartbeats at or past two
// hours raise a billing alert. The detention clock itself is driven only by
// ENTER/EXIT.
const dwellBillingThresholdSeconds = 7200

// GeofenceEventProcessor consumes ENTER/EXIT/DWELL crossings and drives the
// lifecycle state machine, the detention clock, the signal-loss tracker, and
// the trigger fan-out description. Events for one driver must be processed
// serially (the dispatcher shards by driver id); cross-driver events are
// independent.
type GeofenceEventProcessor struct {
	events     ports.EventRepository
	geofences  ports.GeofenceRepository
	loads      ports.LoadRepository
	geotags    ports.GeotagRecorder
	detention  *DetentionClock
	tracker    *SignalLossTracker
	compliance ports.ComplianceChecker
	dedup      DedupChecker
	log        zerolog.Logger
}

// NewGeofenceEventProcessor wires the processor. All collaborators are
// injected; nothing here is package-level state.
func NewGeofenceEventProcessor(
	events ports.EventRepository,
	geofences ports.GeofenceRepository,
	loads ports.LoadRepository,
	geotags ports.GeotagRecorder,
	detention *DetentionClock,
	tracker *SignalLossTracker,
	compliance ports.ComplianceChecker,
	dedup DedupChecker,
	log zerolog.Logger,
) *GeofenceEventProcessor {
	return &GeofenceEventProcessor{
		events:     events,
		geofences:  geofences,
		loads:      loads,
		geotags:    geotags,
		detention:  detention,
		tracker:    tracker,
		compliance: compliance,
		dedup:      dedup,
		log:        log,
	}
}

// Process handles one crossing. Downstream dispatch is fire-and-forget: the
// returned triggers describe side effects, they do not perform them. Failures
// in individual steps are logged and never roll back what is already recorded.
func (p *GeofenceEventProcessor) Process(ctx context.Context, event ports.GeofenceEventInput) (*ports.ProcessResult, error) {
	result := &ports.ProcessResult{}

	// Exactly-once: skip crossings already processed. A failed check is
	// treated as a miss: losing dedup beats losing the event.
	isDup, err := p.dedup.IsDuplicate(ctx, event.DriverID, event.GeofenceID, event.Action, event.Timestamp)
	if err != nil {
		p.log.Warn().Err(err).Str("driver_id", event.DriverID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		metrics.EventsDedupTotal.WithLabelValues("hit").Inc()
		p.log.Debug().
			Str("driver_id", event.DriverID).
			Str("geofence_id", event.GeofenceID).
			Str("action", string(event.Action)).
			Msg("duplicate geofence event skipped")
		result.Duplicate = true
		return result, nil
	}
	metrics.EventsDedupTotal.WithLabelValues("miss").Inc()

	// The raw crossing is always recorded, independent of any downstream
	// effect. An unreachable store degrades to a warning on this path.
	if err := p.events.InsertGeofenceEvent(ctx, &domain.GeofenceEvent{
		GeofenceID:   event.GeofenceID,
		GeofenceType: event.GeofenceType,
		DriverID:     event.DriverID,
		LoadID:       event.LoadID,
		Action:       event.Action,
		Location:     event.Location,
		DwellSeconds: event.DwellSeconds,
		Timestamp:    event.Timestamp,
	}); err != nil {
		p.log.Warn().Err(err).Str("geofence_id", event.GeofenceID).Msg("geofence event insert failed")
	}

	if markErr := p.dedup.Mark(ctx, event.DriverID, event.GeofenceID, event.Action, event.Timestamp); markErr != nil {
		p.log.Warn().Err(markErr).Str("driver_id", event.DriverID).Msg("failed to set dedup key")
	}

	// Signal-loss gate: a facility EXIT inside the grace window is a GPS
	// artifact. It is swallowed before the geotag mapping so a dropout can
	// never forge a departure record.
	if event.Action == domain.ActionExit && isFacility(event.GeofenceType) &&
		p.tracker.ShouldSuppressExit(event.DriverID, event.GeofenceID) {
		var lostFor int64
		if st := p.tracker.State(event.DriverID); st != nil && st.SignalLostAt != nil {
			lostFor = int64(time.Since(*st.SignalLostAt).Seconds())
		}
		result.Suppressed = true
		p.emit(result, domain.TriggerResult{
			Kind:   domain.TriggerSignalLossSuppress,
			Target: domain.TargetSystem,
			Payload: domain.SignalLossSuppressedPayload{
				DriverID:   event.DriverID,
				GeofenceID: event.GeofenceID,
				LostForSec: lostFor,
			},
		})
		metrics.ExitsSuppressedTotal.Inc()
		p.log.Info().
			Str("driver_id", event.DriverID).
			Str("geofence_id", event.GeofenceID).
			Msg("exit suppressed by signal-loss grace window")
		return result, nil
	}

	p.recordGeotag(ctx, event)
	p.dispatch(ctx, event, result)

	metrics.GeofenceEventsProcessedTotal.WithLabelValues(string(event.GeofenceType), string(event.Action)).Inc()
	return result, nil
}

func (p *GeofenceEventProcessor) recordGeotag(ctx context.Context, event ports.GeofenceEventInput) {
	byAction, ok := geotagMapping[event.GeofenceType]
	if !ok {
		return
	}
	tag, ok := byAction[event.Action]
	if !ok {
		return
	}

	var meta map[string]string
	if event.GeofenceType == domain.GeofenceStateBorder && event.FromState != "" && event.ToState != "" {
		meta = map[string]string{"from_state": event.FromState, "to_state": event.ToState}
	}

	if _, err := p.geotags.Record(ctx, ports.RecordGeotagInput{
		LoadID:    event.LoadID,
		DriverID:  event.DriverID,
		EventType: tag.eventType,
		Category:  tag.category,
		Location:  event.Location,
		Timestamp: event.Timestamp,
		Source:    domain.GeotagSourceAuto,
		Metadata:  meta,
	}); err != nil {
		p.log.Warn().Err(err).Str("event_type", tag.eventType).Msg("geotag insert failed")
	}
}

func (p *GeofenceEventProcessor) dispatch(ctx context.Context, event ports.GeofenceEventInput, result *ports.ProcessResult) {
	switch event.GeofenceType {
	case domain.GeofencePickupApproach:
		if event.Action == domain.ActionEnter {
			p.transition(ctx, result, event.LoadID, domain.StatusApproachingPickup)
			p.notify(result, domain.TargetTerminal, "Driver approaching pickup", event)
			p.notify(result, domain.TargetShipper, "Driver approaching pickup", event)
		}

	case domain.GeofencePickupFacility:
		p.facilityEvent(ctx, event, result, domain.DetentionPickup)

	case domain.GeofenceDeliveryApproach:
		if event.Action == domain.ActionEnter {
			p.transition(ctx, result, event.LoadID, domain.StatusApproachingDelivery)
			p.notify(result, domain.TargetTerminal, "Driver approaching delivery", event)
			p.notify(result, domain.TargetShipper, "Driver approaching delivery", event)
			p.notify(result, domain.TargetBroker, "Driver approaching delivery", event)
		}

	case domain.GeofenceWaypoint:
		if event.Action == domain.ActionEnter {
			p.emit(result, domain.TriggerResult{
				Kind:   domain.TriggerWebsocket,
				Target: domain.TargetSystem,
				Payload: domain.WebsocketPayload{
					Channel:  "load:" + event.LoadID,
					Event:    "waypoint_reached",
					LoadID:   event.LoadID,
					DriverID: event.DriverID,
				},
			})
			p.notify(result, domain.TargetShipper, "Checkpoint reached", event)
		}

	case domain.GeofenceStateBorder:
		if event.Action == domain.ActionEnter {
			p.stateBorderEnter(ctx, event, result)
		}

	case domain.GeofenceHazmatZone:
		if event.Action == domain.ActionEnter {
			p.notify(result, domain.TargetDriver, "Hazmat zone entered, reroute recommended", event)
			p.notify(result, domain.TargetSafety, "Vehicle entered hazmat zone", event)
			p.notify(result, domain.TargetCompliance, "Vehicle entered hazmat zone", event)
		}

	case domain.GeofenceWeighStation:
		if event.Action == domain.ActionEnter {
			p.notify(result, domain.TargetDriver, "Weigh station ahead", event)
		}
	}
}

// facilityEvent covers the pickup and delivery facility circles, which share
// the enter/exit/dwell shape and differ only in lifecycle targets.
func (p *GeofenceEventProcessor) facilityEvent(ctx context.Context, event ports.GeofenceEventInput, result *ports.ProcessResult, locType domain.DetentionLocationType) {
	pickup := locType == domain.DetentionPickup

	switch event.Action {
	case domain.ActionEnter:
		p.tracker.ClearSignalLoss(event.DriverID)
		p.tracker.UpdateState(event.DriverID, event.Location.Lat, event.Location.Lng, event.GeofenceID, event.GeofenceType, true, event.LoadID)

		if pickup {
			p.transition(ctx, result, event.LoadID, domain.StatusAtPickup)
		} else {
			p.transition(ctx, result, event.LoadID, domain.StatusAtDelivery)
		}

		if event.LoadID != "" {
			if err := p.detention.Start(ctx, event.LoadID, locType, event.DriverID, event.GeofenceID, event.Timestamp); err != nil {
				p.log.Warn().Err(err).Str("load_id", event.LoadID).Msg("detention start failed")
			}
		}

		if pickup {
			p.notify(result, domain.TargetDriver, "Arrived at pickup", event)
			p.notify(result, domain.TargetTerminal, "Driver arrived at pickup", event)
			p.notify(result, domain.TargetShipper, "Driver arrived at pickup", event)
			p.notify(result, domain.TargetBroker, "Driver arrived at pickup", event)
			p.emit(result, domain.TriggerResult{
				Kind:    domain.TriggerGamification,
				Target:  domain.TargetSystem,
				Payload: domain.GamificationPayload{DriverID: event.DriverID, LoadID: event.LoadID, Hook: "arrived_pickup"},
			})
		} else {
			p.notify(result, domain.TargetAllParties, "Driver arrived at delivery", event)
		}

	case domain.ActionExit:
		p.tracker.UpdateState(event.DriverID, event.Location.Lat, event.Location.Lng, event.GeofenceID, event.GeofenceType, false, event.LoadID)

		if pickup {
			p.transition(ctx, result, event.LoadID, domain.StatusInTransit)
		} else {
			p.transition(ctx, result, event.LoadID, domain.StatusDelivered)
		}

		if event.LoadID != "" {
			if _, err := p.detention.Stop(ctx, event.LoadID, locType, event.Timestamp); err != nil {
				p.log.Warn().Err(err).Str("load_id", event.LoadID).Msg("detention stop failed")
			}
		}

		if pickup {
			p.notify(result, domain.TargetShipper, "Load picked up, in transit", event)
			p.notify(result, domain.TargetBroker, "Load picked up, in transit", event)
		} else {
			if event.LoadID != "" {
				if err := p.geofences.DeactivateForLoad(ctx, event.LoadID); err != nil {
					p.log.Warn().Err(err).Str("load_id", event.LoadID).Msg("geofence deactivation failed")
				}
			}
			p.notify(result, domain.TargetAllParties, "Load delivered", event)
			p.emit(result, domain.TriggerResult{
				Kind:    domain.TriggerFinancial,
				Target:  domain.TargetSystem,
				Payload: domain.FinancialPayload{LoadID: event.LoadID, Event: "load_delivered"},
			})
			p.emit(result, domain.TriggerResult{
				Kind:    domain.TriggerGamification,
				Target:  domain.TargetSystem,
				Payload: domain.GamificationPayload{DriverID: event.DriverID, LoadID: event.LoadID, Hook: "load_delivered"},
			})
		}

	case domain.ActionDwell:
		// Informational heartbeat. Billing is driven by ENTER/EXIT; the
		// alert just tells every party that free time is gone.
		if event.DwellSeconds >= dwellBillingThresholdSeconds {
			p.emit(result, domain.TriggerResult{
				Kind:   domain.TriggerDetentionBilling,
				Target: domain.TargetSystem,
				Payload: domain.DetentionBillingPayload{
					LoadID:       event.LoadID,
					LocationType: locType,
					DwellMinutes: event.DwellSeconds / 60,
				},
			})
			p.notify(result, domain.TargetAllParties, "Detention time accruing", event)
		}
	}
}

func (p *GeofenceEventProcessor) stateBorderEnter(ctx context.Context, event ports.GeofenceEventInput, result *ports.ProcessResult) {
	if event.FromState == "" || event.ToState == "" {
		return
	}

	if err := p.events.InsertStateCrossing(ctx, &domain.StateCrossing{
		LoadID:    event.LoadID,
		DriverID:  event.DriverID,
		FromState: event.FromState,
		ToState:   event.ToState,
		Location:  event.Location,
		Timestamp: event.Timestamp,
	}); err != nil {
		p.log.Warn().Err(err).Str("load_id", event.LoadID).Msg("state crossing insert failed")
	}

	check, err := p.compliance.CheckInterstate(ctx, event.LoadID, event.FromState, event.ToState)
	if err != nil {
		p.log.Warn().Err(err).Str("load_id", event.LoadID).Msg("interstate compliance check failed")
		check = ports.ComplianceResult{Status: ports.ComplianceOK}
	}

	p.emit(result, domain.TriggerResult{
		Kind:   domain.TriggerCompliance,
		Target: domain.TargetCompliance,
		Payload: domain.CompliancePayload{
			LoadID:    event.LoadID,
			DriverID:  event.DriverID,
			FromState: event.FromState,
			ToState:   event.ToState,
			Status:    string(check.Status),
			Detail:    check.Detail,
		},
	})

	if check.Status != ports.ComplianceOK {
		p.emit(result, domain.TriggerResult{
			Kind:   domain.TriggerNotification,
			Target: domain.TargetDriver,
			Payload: domain.NotificationPayload{
				Title:    "Interstate compliance " + string(check.Status),
				Message:  check.Detail,
				LoadID:   event.LoadID,
				DriverID: event.DriverID,
			},
		})
	}
}

// transition advances the load lifecycle through the state machine. An
// invalid request is logged and skipped, never an error: out-of-order and
// duplicate geofence events are normal, and the state machine is the single
// source of truth for what is legal.
func (p *GeofenceEventProcessor) transition(ctx context.Context, result *ports.ProcessResult, loadID string, requested domain.LoadStatus) {
	if loadID == "" {
		return
	}

	current, err := p.loads.GetStatus(ctx, loadID)
	if err != nil {
		p.log.Warn().Err(err).Str("load_id", loadID).Msg("load status lookup failed, transition skipped")
		return
	}

	next, err := domain.AttemptTransition(current, requested)
	if err != nil {
		metrics.InvalidTransitionsTotal.WithLabelValues(string(current), string(requested)).Inc()
		p.log.Info().
			Str("load_id", loadID).
			Str("from", string(current)).
			Str("to", string(requested)).
			Msg("invalid status transition rejected")
		return
	}

	if err := p.loads.SetStatus(ctx, loadID, next); err != nil {
		p.log.Warn().Err(err).Str("load_id", loadID).Msg("status write failed")
		return
	}

	result.StatusChanged = true
	result.NewStatus = next
	p.log.Info().
		Str("load_id", loadID).
		Str("from", string(current)).
		Str("to", string(next)).
		Msg("load status advanced")
}

func (p *GeofenceEventProcessor) notify(result *ports.ProcessResult, target, title string, event ports.GeofenceEventInput) {
	p.emit(result, domain.TriggerResult{
		Kind:   domain.TriggerNotification,
		Target: target,
		Payload: domain.NotificationPayload{
			Title:    title,
			Message:  title,
			LoadID:   event.LoadID,
			DriverID: event.DriverID,
		},
	})
}

func (p *GeofenceEventProcessor) emit(result *ports.ProcessResult, trigger domain.TriggerResult) {
	result.Triggers = append(result.Triggers, trigger)
	metrics.TriggersEmittedTotal.WithLabelValues(string(trigger.Kind)).Inc()
}

func isFacility(t domain.GeofenceType) bool {
	return t == domain.GeofencePickupFacility || t == domain.GeofenceDeliveryFacility
}
