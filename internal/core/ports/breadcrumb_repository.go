package ports

import (
	"context"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// BreadcrumbRepository persists the GPS trail. Breadcrumbs are append-only.
type BreadcrumbRepository interface {
	// InsertBatch writes one chunk of breadcrumbs. Callers bound chunk size.
	InsertBatch(ctx context.Context, crumbs []*domain.Breadcrumb) error
	// LastForDriver returns the most recent breadcrumb for a driver, or
	// (nil, nil) when the driver has no trail yet.
	LastForDriver(ctx context.Context, driverID string) (*domain.Breadcrumb, error)
}
