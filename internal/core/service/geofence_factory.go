package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetedge/telematics-core/internal/core/domain"
	"github.com/fleetedge/telematics-core/internal/core/ports"
)

const (
	approachRadiusMeters = 8047 // 5 mi
	waypointRadiusMeters = 1609 // 1 mi
	// Facility circles default to a tight 150 m but large sites (refineries,
	// tank farms) can override up to 500 m.
	facilityRadiusDefaultMeters = 150
	facilityRadiusMaxMeters     = 500
	facilityDwellThresholdSec   = 7200
)

type geofenceFactory struct {
	repo ports.GeofenceRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewGeofenceFactory returns the factory that materializes a load's fence set.
func NewGeofenceFactory(repo ports.GeofenceRepository, log zerolog.Logger) ports.GeofenceFactory {
	return &geofenceFactory{repo: repo, log: log, now: time.Now}
}

// CreateForLoad builds the approach + facility pairs at pickup and delivery
// plus one waypoint circle per named stop, all stamped with the load id so
// DeactivateForLoad can retire the whole set at once.
func (s *geofenceFactory) CreateForLoad(ctx context.Context, in ports.CreateGeofencesInput) ([]*domain.Geofence, error) {
	if in.LoadID == "" {
		return nil, fmt.Errorf("create geofences: load id required")
	}
	now := s.now().UTC()

	fences := []*domain.Geofence{
		{
			LoadID:       in.LoadID,
			Name:         in.PickupName + " approach",
			Type:         domain.GeofencePickupApproach,
			Center:       in.Pickup,
			RadiusMeters: approachRadiusMeters,
			AlertOnEnter: true,
			Active:       true,
			CreatedAt:    now,
		},
		{
			LoadID:                in.LoadID,
			Name:                  in.PickupName,
			Type:                  domain.GeofencePickupFacility,
			Center:                in.Pickup,
			RadiusMeters:          facilityRadius(in.PickupFacilityRadiusMeters),
			AlertOnEnter:          true,
			AlertOnExit:           true,
			AlertOnDwell:          true,
			DwellThresholdSeconds: facilityDwellThresholdSec,
			Active:                true,
			CreatedAt:             now,
		},
		{
			LoadID:       in.LoadID,
			Name:         in.DeliveryName + " approach",
			Type:         domain.GeofenceDeliveryApproach,
			Center:       in.Delivery,
			RadiusMeters: approachRadiusMeters,
			AlertOnEnter: true,
			Active:       true,
			CreatedAt:    now,
		},
		{
			LoadID:                in.LoadID,
			Name:                  in.DeliveryName,
			Type:                  domain.GeofenceDeliveryFacility,
			Center:                in.Delivery,
			RadiusMeters:          facilityRadius(in.DeliveryFacilityRadiusMeters),
			AlertOnEnter:          true,
			AlertOnExit:           true,
			AlertOnDwell:          true,
			DwellThresholdSeconds: facilityDwellThresholdSec,
			Active:                true,
			CreatedAt:             now,
		},
	}

	for _, wp := range in.Waypoints {
		fences = append(fences, &domain.Geofence{
			LoadID:       in.LoadID,
			Name:         wp.Name,
			Type:         domain.GeofenceWaypoint,
			Center:       wp.Location,
			RadiusMeters: waypointRadiusMeters,
			AlertOnEnter: true,
			Active:       true,
			CreatedAt:    now,
		})
	}

	if err := s.repo.CreateBatch(ctx, fences); err != nil {
		return nil, fmt.Errorf("create geofences: %w", err)
	}

	s.log.Info().Str("load_id", in.LoadID).Int("count", len(fences)).Msg("geofence set created")
	return fences, nil
}

func (s *geofenceFactory) DeactivateForLoad(ctx context.Context, loadID string) error {
	if err := s.repo.DeactivateForLoad(ctx, loadID); err != nil {
		return fmt.Errorf("deactivate geofences: %w", err)
	}
	s.log.Info().Str("load_id", loadID).Msg("geofence set deactivated")
	return nil
}

func (s *geofenceFactory) ListForLoad(ctx context.Context, loadID string, activeOnly bool) ([]*domain.Geofence, error) {
	return s.repo.ListForLoad(ctx, loadID, activeOnly)
}

func facilityRadius(override float64) float64 {
	if override <= 0 {
		return facilityRadiusDefaultMeters
	}
	if override > facilityRadiusMaxMeters {
		return facilityRadiusMaxMeters
	}
	return override
}
