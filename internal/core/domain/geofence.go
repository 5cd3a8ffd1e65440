package domain

import "time"

// GeofenceType classifies what a boundary means to the lifecycle.
type GeofenceType string

const (
	GeofencePickupApproach   GeofenceType = "pickup_approach"
	GeofencePickupFacility   GeofenceType = "pickup_facility"
	GeofenceDeliveryApproach GeofenceType = "delivery_approach"
	GeofenceDeliveryFacility GeofenceType = "delivery_facility"
	GeofenceWaypoint         GeofenceType = "waypoint"
	GeofenceStateBorder      GeofenceType = "state_border"
	GeofenceHazmatZone       GeofenceType = "hazmat_zone"
	GeofenceWeighStation     GeofenceType = "weigh_station"
)

// GeofenceAction is a boundary crossing kind.
type GeofenceAction string

const (
	ActionEnter GeofenceAction = "enter"
	ActionExit  GeofenceAction = "exit"
	ActionDwell GeofenceAction = "dwell"
)

// Geofence is a named circular boundary tied to a load. Immutable after
// creation except for the Active flag, which is cleared in bulk once the
// load reaches terminal delivery.
type Geofence struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	LoadID       string       `json:"load_id" bson:"load_id"`
	Name         string       `json:"name" bson:"name"`
	Type         GeofenceType `json:"type" bson:"type"`
	Center       Coordinates  `json:"center" bson:"center"`
	RadiusMeters float64      `json:"radius_meters" bson:"radius_meters"`
	AlertOnEnter bool         `json:"alert_on_enter" bson:"alert_on_enter"`
	AlertOnExit  bool         `json:"alert_on_exit" bson:"alert_on_exit"`
	AlertOnDwell bool         `json:"alert_on_dwell" bson:"alert_on_dwell"`
	// DwellThresholdSeconds is how long a vehicle may sit inside before
	// dwell heartbeats become alert-worthy.
	DwellThresholdSeconds int       `json:"dwell_threshold_seconds,omitempty" bson:"dwell_threshold_seconds,omitempty"`
	Active                bool      `json:"active" bson:"active"`
	CreatedAt             time.Time `json:"created_at" bson:"created_at"`
}

// GeofenceEvent is one raw ENTER/EXIT/DWELL crossing, append-only.
type GeofenceEvent struct {
	ID           string         `json:"id" bson:"_id,omitempty"`
	GeofenceID   string         `json:"geofence_id" bson:"geofence_id"`
	GeofenceType GeofenceType   `json:"geofence_type" bson:"geofence_type"`
	DriverID     string         `json:"driver_id" bson:"driver_id"`
	LoadID       string         `json:"load_id,omitempty" bson:"load_id,omitempty"`
	Action       GeofenceAction `json:"action" bson:"action"`
	Location     Coordinates    `json:"location" bson:"location"`
	DwellSeconds int            `json:"dwell_seconds,omitempty" bson:"dwell_seconds,omitempty"`
	Timestamp    time.Time      `json:"timestamp" bson:"timestamp"`
}

// StateCrossing records a jurisdictional boundary crossing for IFTA and
// interstate compliance.
type StateCrossing struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	LoadID    string      `json:"load_id" bson:"load_id"`
	DriverID  string      `json:"driver_id" bson:"driver_id"`
	FromState string      `json:"from_state" bson:"from_state"`
	ToState   string      `json:"to_state" bson:"to_state"`
	Location  Coordinates `json:"location" bson:"location"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
}
