package ports

import (
	"context"
	"time"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// DetentionRepository persists billable dwell windows.
type DetentionRepository interface {
	Insert(ctx context.Context, rec *domain.DetentionRecord) (string, error)
	// FindOpen returns the open record for (loadID, locationType), or
	// (nil, nil) when none exists.
	FindOpen(ctx context.Context, loadID string, locationType domain.DetentionLocationType) (*domain.DetentionRecord, error)
	// CloseOpen atomically claims the most recent open record for the pair by
	// stamping exitAt, and returns the claimed record. Returns (nil, nil)
	// when no open record exists. The claim is the atomicity point that
	// preserves the at-most-one-open invariant under concurrent exits.
	CloseOpen(ctx context.Context, loadID string, locationType domain.DetentionLocationType, exitAt time.Time) (*domain.DetentionRecord, error)
	// Finalize writes the computed billing fields onto a claimed record.
	Finalize(ctx context.Context, id string, totalDwellMin, detentionMin int, charge float64, billable bool) error
}
