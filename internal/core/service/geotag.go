package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetedge/telematics-core/internal/core/domain"
	"github.com/fleetedge/telematics-core/internal/core/ports"
)

type geotagRecorder struct {
	repo ports.GeotagRepository
	log  zerolog.Logger
}

// NewGeotagRecorder returns a GeotagRecorder. The type exposes no mutation
// beyond Record: geotags are the legal audit record of where and when a
// business event happened.
func NewGeotagRecorder(repo ports.GeotagRepository, log zerolog.Logger) ports.GeotagRecorder {
	return &geotagRecorder{repo: repo, log: log}
}

func (s *geotagRecorder) Record(ctx context.Context, in ports.RecordGeotagInput) (string, error) {
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	source := in.Source
	if source == "" {
		source = domain.GeotagSourceAuto
	}

	id, err := s.repo.Insert(ctx, &domain.Geotag{
		LoadID:      in.LoadID,
		DriverID:    in.DriverID,
		EventType:   in.EventType,
		Category:    in.Category,
		Location:    in.Location,
		Timestamp:   ts,
		Source:      source,
		PhotoID:     in.PhotoID,
		SignatureID: in.SignatureID,
		DocumentID:  in.DocumentID,
		Metadata:    in.Metadata,
	})
	if err != nil {
		return "", err
	}

	s.log.Info().
		Str("geotag_id", id).
		Str("event_type", in.EventType).
		Str("load_id", in.LoadID).
		Str("driver_id", in.DriverID).
		Msg("geotag recorded")
	return id, nil
}

func (s *geotagRecorder) ListForLoad(ctx context.Context, loadID string) ([]*domain.Geotag, error) {
	return s.repo.ListForLoad(ctx, loadID)
}

func (s *geotagRecorder) ListForDriver(ctx context.Context, driverID string, limit int) ([]*domain.Geotag, error) {
	return s.repo.ListForDriver(ctx, driverID, limit)
}
