package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/fleetedge/telematics-core/internal/api/metrics"
	"github.com/fleetedge/telematics-core/internal/core/domain"
	"github.com/fleetedge/telematics-core/internal/core/ports"
)

// insertChunkSize bounds a single breadcrumb write.
const insertChunkSize = 100

// PositionCache is the live "last known position" store consumed by the
// fleet map (Redis).
type PositionCache interface {
	SetLastPosition(ctx context.Context, pos domain.LastPosition) error
}

type breadcrumbIngestor struct {
	repo     ports.BreadcrumbRepository
	cache    PositionCache
	detector *SpoofingDetector
	log      zerolog.Logger
}

// NewBreadcrumbIngestor returns a BreadcrumbIngestor. The ingest path is
// deliberately failure-swallowing: losing a telemetry point beats crashing a
// moving vehicle's tracking session.
func NewBreadcrumbIngestor(repo ports.BreadcrumbRepository, cache PositionCache, detector *SpoofingDetector, log zerolog.Logger) ports.BreadcrumbIngestor {
	return &breadcrumbIngestor{repo: repo, cache: cache, detector: detector, log: log}
}

// Ingest runs a chronological batch through the spoofing detector, persists
// it in bounded chunks, and refreshes the driver's live position.
func (s *breadcrumbIngestor) Ingest(ctx context.Context, in ports.IngestInput) ports.IngestResult {
	if len(in.Points) == 0 || in.DriverID == "" {
		return ports.IngestResult{}
	}

	// The DB-stored crumb seeds the comparison only for the first point of
	// the batch; after that each point is compared to its immediate
	// in-batch predecessor.
	var prev *domain.LocationPoint
	if last, err := s.repo.LastForDriver(ctx, in.DriverID); err != nil {
		s.log.Warn().Err(err).Str("driver_id", in.DriverID).Msg("last breadcrumb lookup failed, spoof checks start cold")
	} else if last != nil {
		p := last.Point()
		prev = &p
	}

	crumbs := make([]*domain.Breadcrumb, 0, len(in.Points))
	flagged := 0
	for i := range in.Points {
		point := in.Points[i]
		verdict := s.detector.Evaluate(point, prev)
		if verdict.Suspicious {
			flagged++
		}
		crumbs = append(crumbs, &domain.Breadcrumb{
			DriverID:       in.DriverID,
			VehicleID:      in.VehicleID,
			LoadID:         in.LoadID,
			Lat:            point.Lat,
			Lng:            point.Lng,
			Timestamp:      point.Timestamp,
			SpeedMph:       point.SpeedMph,
			Heading:        point.Heading,
			AccuracyMeters: point.AccuracyMeters,
			AltitudeFeet:   point.AltitudeFeet,
			BatteryPercent: point.BatteryPercent,
			Charging:       point.Charging,
			OdometerMiles:  point.OdometerMiles,
			IsMock:         verdict.Suspicious,
			MockProvider:   point.MockProvider,
			SpoofFindings:  verdict.FindingTypes(),
			LoadState:      in.LoadState,
		})
		prev = &in.Points[i]
	}

	ingested := 0
	for start := 0; start < len(crumbs); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(crumbs) {
			end = len(crumbs)
		}
		if err := s.repo.InsertBatch(ctx, crumbs[start:end]); err != nil {
			s.log.Warn().Err(err).Str("driver_id", in.DriverID).Int("chunk_size", end-start).Msg("breadcrumb chunk insert failed, points dropped")
			continue
		}
		ingested += end - start
	}

	last := in.Points[len(in.Points)-1]
	pos := domain.LastPosition{
		DriverID:  in.DriverID,
		VehicleID: in.VehicleID,
		LoadID:    in.LoadID,
		Lat:       last.Lat,
		Lng:       last.Lng,
		SpeedMph:  last.SpeedMph,
		Heading:   last.Heading,
		Timestamp: last.Timestamp,
	}
	if err := s.cache.SetLastPosition(ctx, pos); err != nil {
		s.log.Warn().Err(err).Str("driver_id", in.DriverID).Msg("last position update failed")
	}

	metrics.BreadcrumbsIngestedTotal.Add(float64(ingested))
	metrics.BreadcrumbsFlaggedTotal.Add(float64(flagged))

	s.log.Info().
		Str("driver_id", in.DriverID).
		Int("ingested", ingested).
		Int("flagged", flagged).
		Msg("breadcrumb batch ingested")

	return ports.IngestResult{Ingested: ingested, Flagged: flagged}
}
