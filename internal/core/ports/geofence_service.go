package ports

import (
	"context"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// WaypointInput is one named intermediate stop on a load's route.
type WaypointInput struct {
	Name     string
	Location domain.Coordinates
}

// CreateGeofencesInput carries everything needed to materialize the fence set
// for a newly booked load.
type CreateGeofencesInput struct {
	LoadID       string
	PickupName   string
	Pickup       domain.Coordinates
	DeliveryName string
	Delivery     domain.Coordinates
	Waypoints    []WaypointInput
	// PickupFacilityRadiusMeters / DeliveryFacilityRadiusMeters override the
	// default facility radius for large sites (refineries, tank farms).
	// Zero means default; values are capped by the factory.
	PickupFacilityRadiusMeters   float64
	DeliveryFacilityRadiusMeters float64
}

// GeofenceFactory materializes and retires the geofence set for a load.
type GeofenceFactory interface {
	CreateForLoad(ctx context.Context, in CreateGeofencesInput) ([]*domain.Geofence, error)
	DeactivateForLoad(ctx context.Context, loadID string) error
	ListForLoad(ctx context.Context, loadID string, activeOnly bool) ([]*domain.Geofence, error)
}
