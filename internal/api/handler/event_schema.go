package handler

import "time"

type coordinatesRequest struct {
	Lat float64 `json:"lat" validate:"required,latitude"`
	Lng float64 `json:"lng" validate:"required,longitude"`
}

type geofenceEventRequest struct {
	GeofenceID   string             `json:"geofence_id" validate:"required"`
	GeofenceType string             `json:"geofence_type" validate:"required,oneof=pickup_approach pickup_facility delivery_approach delivery_facility waypoint state_border hazmat_zone weigh_station"`
	DriverID     string             `json:"driver_id" validate:"required"`
	LoadID       string             `json:"load_id"`
	Action       string             `json:"action" validate:"required,oneof=enter exit dwell"`
	Location     coordinatesRequest `json:"location" validate:"required"`
	DwellSeconds int                `json:"dwell_seconds"`
	Timestamp    time.Time          `json:"timestamp" validate:"required"`
	FromState    string             `json:"from_state"`
	ToState      string             `json:"to_state"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}
