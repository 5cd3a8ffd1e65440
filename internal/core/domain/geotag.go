package domain

import "time"

// GeotagCategory groups geotag event types for compliance reporting.
type GeotagCategory string

const (
	CategoryLifecycle  GeotagCategory = "lifecycle"
	CategoryCompliance GeotagCategory = "compliance"
	CategorySafety     GeotagCategory = "safety"
)

// Geotag event types written by the processor or by manual driver actions.
const (
	GeotagArrivedPickup     = "arrived_pickup"
	GeotagDepartedPickup    = "departed_pickup"
	GeotagArrivedDelivery   = "arrived_delivery"
	GeotagDepartedDelivery  = "departed_delivery"
	GeotagStateCrossing     = "state_crossing"
	GeotagHazmatZoneEntry   = "hazmat_zone_entry"
	GeotagWeighStationAppr  = "weigh_station_approach"
)

// GeotagSource distinguishes automatic (geofence-driven) records from manual
// human actions.
type GeotagSource string

const (
	GeotagSourceAuto   GeotagSource = "auto"
	GeotagSourceManual GeotagSource = "manual"
)

// Geotag is an immutable, location-and-time-stamped business event. It is the
// legal record of "who/where/when": there is no update or delete operation
// anywhere in the system.
type Geotag struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	LoadID      string            `json:"load_id,omitempty" bson:"load_id,omitempty"`
	DriverID    string            `json:"driver_id" bson:"driver_id"`
	EventType   string            `json:"event_type" bson:"event_type"`
	Category    GeotagCategory    `json:"category" bson:"category"`
	Location    Coordinates       `json:"location" bson:"location"`
	Timestamp   time.Time         `json:"timestamp" bson:"timestamp"`
	Source      GeotagSource      `json:"source" bson:"source"`
	PhotoID     string            `json:"photo_id,omitempty" bson:"photo_id,omitempty"`
	SignatureID string            `json:"signature_id,omitempty" bson:"signature_id,omitempty"`
	DocumentID  string            `json:"document_id,omitempty" bson:"document_id,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
}
