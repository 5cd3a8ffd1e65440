package handler

type etaRequest struct {
	Current     coordinatesRequest `json:"current" validate:"required"`
	Destination coordinatesRequest `json:"destination" validate:"required"`
}

type deviationRequest struct {
	// Polyline is the active route in "lat,lng;lat,lng" form, as produced
	// by the routing system.
	Polyline string             `json:"polyline" validate:"required"`
	Current  coordinatesRequest `json:"current" validate:"required"`
}

type channelsRequest struct {
	ActiveLoadIDs []string `json:"active_load_ids"`
	FacilityID    string   `json:"facility_id"`
}

type channelsResponse struct {
	Channels []string `json:"channels"`
}
