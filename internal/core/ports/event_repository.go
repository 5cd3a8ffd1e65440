package ports

import (
	"context"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// EventRepository is the append-only audit trail for raw geofence crossings
// and jurisdictional border crossings.
type EventRepository interface {
	InsertGeofenceEvent(ctx context.Context, event *domain.GeofenceEvent) error
	InsertStateCrossing(ctx context.Context, crossing *domain.StateCrossing) error
}
