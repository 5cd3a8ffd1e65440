package domain

import "errors"

// LoadStatus represents the lifecycle state of a load (shipment).
type LoadStatus string

const (
	StatusPosted              LoadStatus = "posted"
	StatusBidding             LoadStatus = "bidding"
	StatusAssigned            LoadStatus = "assigned"
	StatusBooked              LoadStatus = "booked"
	StatusEnRouteToPickup     LoadStatus = "en_route_to_pickup"
	StatusApproachingPickup   LoadStatus = "approaching_pickup"
	StatusAtPickup            LoadStatus = "at_pickup"
	StatusLoading             LoadStatus = "loading"
	StatusLoaded              LoadStatus = "loaded"
	StatusInTransit           LoadStatus = "in_transit"
	StatusApproachingDelivery LoadStatus = "approaching_delivery"
	StatusAtDelivery          LoadStatus = "at_delivery"
	StatusUnloading           LoadStatus = "unloading"
	StatusDelivered           LoadStatus = "delivered"
	StatusCompleted           LoadStatus = "completed"
	StatusCancelled           LoadStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions. Cancellation
// is reachable from every state before the load is delivered. Facility ENTER
// events may legitimately arrive without the matching approach event, so the
// graph includes the direct en-route -> at-facility edges.
var validTransitions = map[LoadStatus][]LoadStatus{
	StatusPosted:              {StatusBidding, StatusAssigned, StatusBooked, StatusCancelled},
	StatusBidding:             {StatusAssigned, StatusBooked, StatusCancelled},
	StatusAssigned:            {StatusBooked, StatusCancelled},
	StatusBooked:              {StatusEnRouteToPickup, StatusCancelled},
	StatusEnRouteToPickup:     {StatusApproachingPickup, StatusAtPickup, StatusCancelled},
	StatusApproachingPickup:   {StatusAtPickup, StatusCancelled},
	StatusAtPickup:            {StatusLoading, StatusInTransit, StatusCancelled},
	StatusLoading:             {StatusLoaded, StatusCancelled},
	StatusLoaded:              {StatusInTransit, StatusCancelled},
	StatusInTransit:           {StatusApproachingDelivery, StatusAtDelivery, StatusCancelled},
	StatusApproachingDelivery: {StatusAtDelivery, StatusCancelled},
	StatusAtDelivery:          {StatusUnloading, StatusDelivered, StatusCancelled},
	StatusUnloading:           {StatusDelivered, StatusCancelled},
	StatusDelivered:           {StatusCompleted},
}

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrLoadNotFound      = errors.New("load not found")
	ErrGeofenceNotFound  = errors.New("geofence not found")
	ErrForbidden         = errors.New("access forbidden")
)

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s LoadStatus) CanTransitionTo(next LoadStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AttemptTransition validates a requested transition against the lifecycle
// graph. On success it returns the new status; otherwise ErrInvalidTransition.
// It is pure and persistence-free so callers decide how a rejection is handled
// (the geofence event processor logs and skips, it never fails the event).
func AttemptTransition(current, requested LoadStatus) (LoadStatus, error) {
	if !current.CanTransitionTo(requested) {
		return current, ErrInvalidTransition
	}
	return requested, nil
}

// Load is the unit whose lifecycle the state machine governs. Ownership lives
// with the shipment-management system; this core reads and advances status.
type Load struct {
	ID     string     `json:"id" bson:"_id,omitempty"`
	Status LoadStatus `json:"status" bson:"status"`
}
