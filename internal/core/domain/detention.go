package domain

import "time"

// DetentionLocationType says which end of the haul a detention window covers.
type DetentionLocationType string

const (
	DetentionPickup   DetentionLocationType = "pickup"
	DetentionDelivery DetentionLocationType = "delivery"
)

// DetentionRecord is a billable dwell window at a facility. Opened on facility
// ENTER, closed exactly once on the matching EXIT. Invariant: at most one open
// record per (load, location type) at any time.
type DetentionRecord struct {
	ID                string                `json:"id" bson:"_id,omitempty"`
	LoadID            string                `json:"load_id" bson:"load_id"`
	LocationType      DetentionLocationType `json:"location_type" bson:"location_type"`
	DriverID          string                `json:"driver_id" bson:"driver_id"`
	GeofenceID        string                `json:"geofence_id" bson:"geofence_id"`
	EnterAt           time.Time             `json:"enter_at" bson:"enter_at"`
	ExitAt            *time.Time            `json:"exit_at,omitempty" bson:"exit_at,omitempty"`
	FreeTimeMinutes   int                   `json:"free_time_minutes" bson:"free_time_minutes"`
	TotalDwellMinutes int                   `json:"total_dwell_minutes" bson:"total_dwell_minutes"`
	DetentionMinutes  int                   `json:"detention_minutes" bson:"detention_minutes"`
	RatePerHour       float64               `json:"rate_per_hour" bson:"rate_per_hour"`
	Charge            float64               `json:"charge" bson:"charge"`
	Billable          bool                  `json:"billable" bson:"billable"`
	Paid              bool                  `json:"paid" bson:"paid"`
}

// Open reports whether the record is still accruing dwell time.
func (r DetentionRecord) Open() bool {
	return r.ExitAt == nil
}
