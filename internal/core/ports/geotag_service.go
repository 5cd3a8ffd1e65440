package ports

import (
	"context"
	"time"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// RecordGeotagInput carries one business event to stamp.
type RecordGeotagInput struct {
	LoadID      string
	DriverID    string
	EventType   string
	Category    domain.GeotagCategory
	Location    domain.Coordinates
	Timestamp   time.Time
	Source      domain.GeotagSource
	PhotoID     string
	SignatureID string
	DocumentID  string
	Metadata    map[string]string
}

// GeotagRecorder writes and reads the append-only geotag trail.
type GeotagRecorder interface {
	Record(ctx context.Context, in RecordGeotagInput) (string, error)
	ListForLoad(ctx context.Context, loadID string) ([]*domain.Geotag, error)
	ListForDriver(ctx context.Context, driverID string, limit int) ([]*domain.Geotag, error)
}
