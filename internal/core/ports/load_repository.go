package ports

import (
	"context"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// LoadRepository is the narrow view this core has over loads, which are owned
// by the shipment-management system: read the current status, write the next
// valid one. All transition legality lives in the domain state machine.
type LoadRepository interface {
	GetStatus(ctx context.Context, loadID string) (domain.LoadStatus, error)
	SetStatus(ctx context.Context, loadID string, status domain.LoadStatus) error
}
