package handler

import "time"

type locationPointRequest struct {
	Lat            float64   `json:"lat" validate:"required,latitude"`
	Lng            float64   `json:"lng" validate:"required,longitude"`
	Timestamp      time.Time `json:"timestamp" validate:"required"`
	SpeedMph       float64   `json:"speed_mph"`
	Heading        float64   `json:"heading"`
	AccuracyMeters float64   `json:"accuracy_meters"`
	AltitudeFeet   *float64  `json:"altitude_feet"`
	BatteryPercent float64   `json:"battery_percent"`
	Charging       bool      `json:"charging"`
	OdometerMiles  float64   `json:"odometer_miles"`
	MockProvider   bool      `json:"mock_provider"`
}

type locationBatchRequest struct {
	DriverID  string                 `json:"driver_id" validate:"required"`
	VehicleID string                 `json:"vehicle_id"`
	LoadID    string                 `json:"load_id"`
	LoadState string                 `json:"load_state"`
	Points    []locationPointRequest `json:"points" validate:"required,min=1,dive"`
}

type signalLossRequest struct {
	DriverID string `json:"driver_id"`
}
