package ports

import (
	"context"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// GeotagRepository persists immutable geotags. There is deliberately no
// update or delete: geotags are the tamper-evident audit record.
type GeotagRepository interface {
	Insert(ctx context.Context, tag *domain.Geotag) (string, error)
	ListForLoad(ctx context.Context, loadID string) ([]*domain.Geotag, error)
	ListForDriver(ctx context.Context, driverID string, limit int) ([]*domain.Geotag, error)
}
