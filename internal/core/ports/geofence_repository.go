package ports

import (
	"context"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// GeofenceRepository persists the geofence set for each load.
type GeofenceRepository interface {
	// CreateBatch inserts the whole fence set for a load in one logical write.
	CreateBatch(ctx context.Context, fences []*domain.Geofence) error
	ListForLoad(ctx context.Context, loadID string, activeOnly bool) ([]*domain.Geofence, error)
	// DeactivateForLoad retires every fence for the load once delivery is
	// confirmed. Fences are never deleted.
	DeactivateForLoad(ctx context.Context, loadID string) error
}
