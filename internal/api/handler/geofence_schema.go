package handler

type waypointRequest struct {
	Name     string             `json:"name" validate:"required"`
	Location coordinatesRequest `json:"location" validate:"required"`
}

type createGeofencesRequest struct {
	PickupName   string             `json:"pickup_name" validate:"required"`
	Pickup       coordinatesRequest `json:"pickup" validate:"required"`
	DeliveryName string             `json:"delivery_name" validate:"required"`
	Delivery     coordinatesRequest `json:"delivery" validate:"required"`
	Waypoints    []waypointRequest  `json:"waypoints" validate:"dive"`

	// Optional overrides for large facilities. Zero means default; the
	// factory caps oversized values.
	PickupFacilityRadiusMeters   float64 `json:"pickup_facility_radius_meters" validate:"omitempty,min=0"`
	DeliveryFacilityRadiusMeters float64 `json:"delivery_facility_radius_meters" validate:"omitempty,min=0"`
}
