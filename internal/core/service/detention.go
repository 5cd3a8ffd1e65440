package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetedge/telematics-core/internal/api/metrics"
	"github.com/fleetedge/telematics-core/internal/core/domain"
	"github.com/fleetedge/telematics-core/internal/core/ports"
)

// detentionFreeTimeMinutes is the contractual free-time allowance before
// dwell becomes billable.
const detentionFreeTimeMinutes = 120

// DetentionClock opens a billable dwell window on facility ENTER and closes
// it exactly once on the matching EXIT.
type DetentionClock struct {
	repo        ports.DetentionRepository
	ratePerHour float64
	log         zerolog.Logger
}

// NewDetentionClock returns a clock charging ratePerHour for detention time.
func NewDetentionClock(repo ports.DetentionRepository, ratePerHour float64, log zerolog.Logger) *DetentionClock {
	return &DetentionClock{repo: repo, ratePerHour: ratePerHour, log: log}
}

// Start opens a DetentionRecord with the fixed free-time allowance. If an
// open record already exists for the pair (duplicate ENTER), Start is a
// no-op: the original enter time is the billable truth.
func (c *DetentionClock) Start(ctx context.Context, loadID string, locationType domain.DetentionLocationType, driverID, geofenceID string, enterAt time.Time) error {
	existing, err := c.repo.FindOpen(ctx, loadID, locationType)
	if err != nil {
		return fmt.Errorf("detention start: %w", err)
	}
	if existing != nil {
		c.log.Info().
			Str("load_id", loadID).
			Str("location_type", string(locationType)).
			Msg("detention already running, duplicate enter ignored")
		return nil
	}

	_, err = c.repo.Insert(ctx, &domain.DetentionRecord{
		LoadID:          loadID,
		LocationType:    locationType,
		DriverID:        driverID,
		GeofenceID:      geofenceID,
		EnterAt:         enterAt.UTC(),
		FreeTimeMinutes: detentionFreeTimeMinutes,
		RatePerHour:     c.ratePerHour,
	})
	if err != nil {
		return fmt.Errorf("detention start: %w", err)
	}

	metrics.DetentionOpenedTotal.WithLabelValues(string(locationType)).Inc()
	c.log.Info().
		Str("load_id", loadID).
		Str("location_type", string(locationType)).
		Time("enter_at", enterAt).
		Msg("detention clock started")
	return nil
}

// Stop atomically claims the open record for the pair, computes dwell and
// detention minutes, and writes the charge. An EXIT without a matching ENTER
// is a no-op: it must not fabricate billing.
func (c *DetentionClock) Stop(ctx context.Context, loadID string, locationType domain.DetentionLocationType, exitAt time.Time) (*domain.DetentionRecord, error) {
	rec, err := c.repo.CloseOpen(ctx, loadID, locationType, exitAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("detention stop: %w", err)
	}
	if rec == nil {
		c.log.Info().
			Str("load_id", loadID).
			Str("location_type", string(locationType)).
			Msg("no open detention record, exit ignored")
		return nil, nil
	}

	totalDwell := int(exitAt.Sub(rec.EnterAt).Minutes())
	detentionMin := totalDwell - rec.FreeTimeMinutes
	if detentionMin < 0 {
		detentionMin = 0
	}
	charge := roundCents(float64(detentionMin) / 60.0 * rec.RatePerHour)
	billable := detentionMin > 0

	if err := c.repo.Finalize(ctx, rec.ID, totalDwell, detentionMin, charge, billable); err != nil {
		return nil, fmt.Errorf("detention stop: finalize: %w", err)
	}

	exit := exitAt.UTC()
	rec.ExitAt = &exit
	rec.TotalDwellMinutes = totalDwell
	rec.DetentionMinutes = detentionMin
	rec.Charge = charge
	rec.Billable = billable

	metrics.DetentionClosedTotal.WithLabelValues(fmt.Sprintf("%t", billable)).Inc()
	c.log.Info().
		Str("load_id", loadID).
		Str("location_type", string(locationType)).
		Int("total_dwell_min", totalDwell).
		Int("detention_min", detentionMin).
		Float64("charge", charge).
		Msg("detention clock stopped")
	return rec, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
