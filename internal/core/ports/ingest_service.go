package ports

import (
	"context"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// IngestInput is one chronological batch of GPS samples from a driver's device.
type IngestInput struct {
	DriverID  string
	VehicleID string
	LoadID    string
	// LoadState snapshots the load status the client believes it is in.
	LoadState string
	Points    []domain.LocationPoint
}

// IngestResult reports what happened to a batch.
type IngestResult struct {
	Ingested int `json:"ingested"`
	Flagged  int `json:"flagged"`
}

// BreadcrumbIngestor consumes GPS batches. It never fails the caller: an
// empty batch or an unreachable store degrades to a zero-count result,
// because telemetry ingestion must never crash a moving vehicle's session.
type BreadcrumbIngestor interface {
	Ingest(ctx context.Context, in IngestInput) IngestResult
}
