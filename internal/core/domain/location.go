package domain

import "time"

// LocationPoint is one raw GPS sample as reported by the device integration
// layer. It is immutable and consumed exactly once by the breadcrumb ingestor.
type LocationPoint struct {
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	Timestamp      time.Time `json:"timestamp"`
	SpeedMph       float64   `json:"speed_mph"`
	Heading        float64   `json:"heading"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	AltitudeFeet   *float64  `json:"altitude_feet,omitempty"`
	BatteryPercent float64   `json:"battery_percent"`
	Charging       bool      `json:"charging"`
	OdometerMiles  float64   `json:"odometer_miles"`
	// MockProvider is the device's own report that a mock location provider
	// is active. The spoof verdict is computed separately.
	MockProvider bool `json:"mock_provider"`
}

// Coordinates returns the point's position as a Coordinates value.
func (p LocationPoint) Coordinates() Coordinates {
	return Coordinates{Lat: p.Lat, Lng: p.Lng}
}

// Breadcrumb is a persisted GPS sample in a driver's continuous location
// trail. Never mutated after insert; retained for audit and replay.
type Breadcrumb struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	DriverID       string    `json:"driver_id" bson:"driver_id"`
	VehicleID      string    `json:"vehicle_id,omitempty" bson:"vehicle_id,omitempty"`
	LoadID         string    `json:"load_id,omitempty" bson:"load_id,omitempty"`
	Lat            float64   `json:"lat" bson:"lat"`
	Lng            float64   `json:"lng" bson:"lng"`
	Timestamp      time.Time `json:"timestamp" bson:"timestamp"`
	SpeedMph       float64   `json:"speed_mph" bson:"speed_mph"`
	Heading        float64   `json:"heading" bson:"heading"`
	AccuracyMeters float64   `json:"accuracy_meters" bson:"accuracy_meters"`
	AltitudeFeet   *float64  `json:"altitude_feet,omitempty" bson:"altitude_feet,omitempty"`
	BatteryPercent float64   `json:"battery_percent" bson:"battery_percent"`
	Charging       bool      `json:"charging" bson:"charging"`
	OdometerMiles  float64   `json:"odometer_miles" bson:"odometer_miles"`
	// IsMock is the spoofing detector's verdict for this sample, distinct
	// from the device-reported mock flag below.
	IsMock        bool     `json:"is_mock" bson:"is_mock"`
	MockProvider  bool     `json:"mock_provider" bson:"mock_provider"`
	SpoofFindings []string `json:"spoof_findings,omitempty" bson:"spoof_findings,omitempty"`
	// LoadState snapshots the load status at ingest time for replay.
	LoadState string `json:"load_state,omitempty" bson:"load_state,omitempty"`
}

// Point returns the breadcrumb's underlying GPS sample, used as the spoof
// detector's "previous" when folding a new batch.
func (b Breadcrumb) Point() LocationPoint {
	return LocationPoint{
		Lat:            b.Lat,
		Lng:            b.Lng,
		Timestamp:      b.Timestamp,
		SpeedMph:       b.SpeedMph,
		Heading:        b.Heading,
		AccuracyMeters: b.AccuracyMeters,
		AltitudeFeet:   b.AltitudeFeet,
		BatteryPercent: b.BatteryPercent,
		Charging:       b.Charging,
		OdometerMiles:  b.OdometerMiles,
		MockProvider:   b.MockProvider,
	}
}

// LastPosition is the single live "where is this driver now" record consumed
// by the fleet map.
type LastPosition struct {
	DriverID  string    `json:"driver_id"`
	VehicleID string    `json:"vehicle_id,omitempty"`
	LoadID    string    `json:"load_id,omitempty"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	SpeedMph  float64   `json:"speed_mph"`
	Heading   float64   `json:"heading"`
	Timestamp time.Time `json:"timestamp"`
}
