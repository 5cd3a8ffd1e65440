package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetedge/telematics-core/internal/core/domain"
	"github.com/fleetedge/telematics-core/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubBreadcrumbRepo struct {
	last      *domain.Breadcrumb
	lastErr   error
	insertErr error
	inserted  []*domain.Breadcrumb
	batches   int
}

func (r *stubBreadcrumbRepo) InsertBatch(_ context.Context, crumbs []*domain.Breadcrumb) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, crumbs...)
	r.batches++
	return nil
}

func (r *stubBreadcrumbRepo) LastForDriver(_ context.Context, _ string) (*domain.Breadcrumb, error) {
	return r.last, r.lastErr
}

type stubPositionCache struct {
	setErr error
	last   *domain.LastPosition
}

func (c *stubPositionCache) SetLastPosition(_ context.Context, pos domain.LastPosition) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.last = &pos
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

var ingestBase = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestIngestor(repo *stubBreadcrumbRepo, cache *stubPositionCache) ports.BreadcrumbIngestor {
	detector := NewSpoofingDetectorWithPasses(nil, defaultPassRadiusMiles, fixedClock(ingestBase))
	return NewBreadcrumbIngestor(repo, cache, detector, zerolog.Nop())
}

func drivingPoints(n int) []domain.LocationPoint {
	points := make([]domain.LocationPoint, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, domain.LocationPoint{
			Lat:            32.9000 + float64(i)*0.001,
			Lng:            -97.0000,
			Timestamp:      ingestBase.Add(time.Duration(i-n+1) * 10 * time.Second),
			SpeedMph:       60,
			AccuracyMeters: 10,
		})
	}
	return points
}

func TestIngest_EmptyBatch(t *testing.T) {
	repo := &stubBreadcrumbRepo{}
	cache := &stubPositionCache{}
	svc := newTestIngestor(repo, cache)

	result := svc.Ingest(context.Background(), ports.IngestInput{DriverID: "drv_1"})
	if result.Ingested != 0 || result.Flagged != 0 {
		t.Errorf("empty batch: got %+v, want zero result", result)
	}
	if cache.last != nil {
		t.Error("empty batch must not touch the position cache")
	}
}

func TestIngest_MissingDriverID(t *testing.T) {
	repo := &stubBreadcrumbRepo{}
	cache := &stubPositionCache{}
	svc := newTestIngestor(repo, cache)

	result := svc.Ingest(context.Background(), ports.IngestInput{Points: drivingPoints(2)})
	if result.Ingested != 0 {
		t.Errorf("missing driver id: got %+v, want zero result", result)
	}
}

func TestIngest_HappyPath(t *testing.T) {
	repo := &stubBreadcrumbRepo{}
	cache := &stubPositionCache{}
	svc := newTestIngestor(repo, cache)

	points := drivingPoints(3)
	result := svc.Ingest(context.Background(), ports.IngestInput{
		DriverID:  "drv_1",
		VehicleID: "veh_1",
		LoadID:    "load_1",
		Points:    points,
	})

	if result.Ingested != 3 || result.Flagged != 0 {
		t.Errorf("result = %+v, want 3 ingested / 0 flagged", result)
	}
	if len(repo.inserted) != 3 {
		t.Fatalf("expected 3 crumbs stored, got %d", len(repo.inserted))
	}
	if repo.inserted[0].DriverID != "drv_1" || repo.inserted[0].LoadID != "load_1" {
		t.Errorf("crumb identity not carried: %+v", repo.inserted[0])
	}
	if cache.last == nil {
		t.Fatal("expected live position refresh")
	}
	if cache.last.Lat != points[2].Lat {
		t.Errorf("live position must be the last point, got lat %v", cache.last.Lat)
	}
}

func TestIngest_MockPointFlagged(t *testing.T) {
	repo := &stubBreadcrumbRepo{}
	cache := &stubPositionCache{}
	svc := newTestIngestor(repo, cache)

	points := drivingPoints(3)
	points[1].MockProvider = true

	result := svc.Ingest(context.Background(), ports.IngestInput{DriverID: "drv_1", Points: points})
	if result.Flagged != 1 {
		t.Errorf("flagged = %d, want 1", result.Flagged)
	}
	if !repo.inserted[1].IsMock {
		t.Error("flagged crumb must be stored with IsMock set")
	}
	if repo.inserted[0].IsMock || repo.inserted[2].IsMock {
		t.Error("clean crumbs must not be marked mock")
	}
	if result.Ingested != 3 {
		t.Errorf("flagged points are still stored, ingested = %d", result.Ingested)
	}
}

func TestIngest_SeededFromStoredTrail(t *testing.T) {
	// The driver's last stored crumb is 200 miles away, 10 seconds ago:
	// the first point of the new batch teleports.
	repo := &stubBreadcrumbRepo{
		last: &domain.Breadcrumb{
			DriverID:  "drv_1",
			Lat:       35.9,
			Lng:       -97.0,
			Timestamp: ingestBase.Add(-30 * time.Second),
		},
	}
	cache := &stubPositionCache{}
	svc := newTestIngestor(repo, cache)

	result := svc.Ingest(context.Background(), ports.IngestInput{DriverID: "drv_1", Points: drivingPoints(2)})
	if result.Flagged == 0 {
		t.Error("teleport from stored trail must flag the first point")
	}
}

func TestIngest_StoreFailureDegrades(t *testing.T) {
	repo := &stubBreadcrumbRepo{insertErr: errors.New("mongo down")}
	cache := &stubPositionCache{}
	svc := newTestIngestor(repo, cache)

	result := svc.Ingest(context.Background(), ports.IngestInput{DriverID: "drv_1", Points: drivingPoints(2)})
	if result.Ingested != 0 {
		t.Errorf("ingested = %d, want 0 when the store is down", result.Ingested)
	}
	if cache.last == nil {
		t.Error("live position must still refresh when the trail store fails")
	}
}

func TestIngest_LookupFailureStartsCold(t *testing.T) {
	repo := &stubBreadcrumbRepo{lastErr: errors.New("timeout")}
	cache := &stubPositionCache{}
	svc := newTestIngestor(repo, cache)

	result := svc.Ingest(context.Background(), ports.IngestInput{DriverID: "drv_1", Points: drivingPoints(2)})
	if result.Ingested != 2 {
		t.Errorf("lookup failure must not block ingest, got %+v", result)
	}
}
