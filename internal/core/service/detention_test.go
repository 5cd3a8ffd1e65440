package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stub
// ---------------------------------------------------------------------------

type stubDetentionRepo struct {
	records   []*domain.DetentionRecord
	finalized map[string][4]interface{} // id -> (totalDwell, detention, charge, billable)
	insertErr error
}

func newStubDetentionRepo() *stubDetentionRepo {
	return &stubDetentionRepo{finalized: make(map[string][4]interface{})}
}

func (r *stubDetentionRepo) Insert(_ context.Context, rec *domain.DetentionRecord) (string, error) {
	if r.insertErr != nil {
		return "", r.insertErr
	}
	rec.ID = fmt.Sprintf("det_%d", len(r.records)+1)
	r.records = append(r.records, rec)
	return rec.ID, nil
}

func (r *stubDetentionRepo) FindOpen(_ context.Context, loadID string, locationType domain.DetentionLocationType) (*domain.DetentionRecord, error) {
	for _, rec := range r.records {
		if rec.LoadID == loadID && rec.LocationType == locationType && rec.Open() {
			return rec, nil
		}
	}
	return nil, nil
}

func (r *stubDetentionRepo) CloseOpen(_ context.Context, loadID string, locationType domain.DetentionLocationType, exitAt time.Time) (*domain.DetentionRecord, error) {
	for _, rec := range r.records {
		if rec.LoadID == loadID && rec.LocationType == locationType && rec.Open() {
			exit := exitAt
			rec.ExitAt = &exit
			claimed := *rec
			return &claimed, nil
		}
	}
	return nil, nil
}

func (r *stubDetentionRepo) Finalize(_ context.Context, id string, totalDwellMin, detentionMin int, charge float64, billable bool) error {
	r.finalized[id] = [4]interface{}{totalDwellMin, detentionMin, charge, billable}
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

var detEnter = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func TestDetention_StartOpensRecord(t *testing.T) {
	repo := newStubDetentionRepo()
	clock := NewDetentionClock(repo, 75, zerolog.Nop())

	err := clock.Start(context.Background(), "load_1", domain.DetentionPickup, "drv_1", "gf_1", detEnter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(repo.records))
	}
	rec := repo.records[0]
	if rec.FreeTimeMinutes != 120 {
		t.Errorf("free time = %d, want 120", rec.FreeTimeMinutes)
	}
	if rec.RatePerHour != 75 {
		t.Errorf("rate = %v, want 75", rec.RatePerHour)
	}
	if !rec.Open() {
		t.Error("fresh record must be open")
	}
}

func TestDetention_DuplicateEnterIgnored(t *testing.T) {
	repo := newStubDetentionRepo()
	clock := NewDetentionClock(repo, 75, zerolog.Nop())

	_ = clock.Start(context.Background(), "load_1", domain.DetentionPickup, "drv_1", "gf_1", detEnter)
	// Second ENTER 10 minutes later: the original enter time is the truth.
	err := clock.Start(context.Background(), "load_1", domain.DetentionPickup, "drv_1", "gf_1", detEnter.Add(10*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.records) != 1 {
		t.Errorf("duplicate enter must not open a second record, got %d", len(repo.records))
	}
	if !repo.records[0].EnterAt.Equal(detEnter) {
		t.Errorf("enter time moved: %v", repo.records[0].EnterAt)
	}
}

func TestDetention_StopComputesCharge(t *testing.T) {
	repo := newStubDetentionRepo()
	clock := NewDetentionClock(repo, 75, zerolog.Nop())

	_ = clock.Start(context.Background(), "load_1", domain.DetentionPickup, "drv_1", "gf_1", detEnter)

	// 150 minutes of dwell: 120 free, 30 billable, 0.5h * $75 = $37.50.
	rec, err := clock.Stop(context.Background(), "load_1", domain.DetentionPickup, detEnter.Add(150*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected closed record")
	}
	if rec.TotalDwellMinutes != 150 {
		t.Errorf("total dwell = %d, want 150", rec.TotalDwellMinutes)
	}
	if rec.DetentionMinutes != 30 {
		t.Errorf("detention minutes = %d, want 30", rec.DetentionMinutes)
	}
	if rec.Charge != 37.5 {
		t.Errorf("charge = %v, want 37.5", rec.Charge)
	}
	if !rec.Billable {
		t.Error("expected billable record")
	}
	if _, ok := repo.finalized[rec.ID]; !ok {
		t.Error("expected Finalize to be called")
	}
}

func TestDetention_StopWithinFreeTime(t *testing.T) {
	repo := newStubDetentionRepo()
	clock := NewDetentionClock(repo, 75, zerolog.Nop())

	_ = clock.Start(context.Background(), "load_1", domain.DetentionDelivery, "drv_1", "gf_2", detEnter)

	rec, err := clock.Stop(context.Background(), "load_1", domain.DetentionDelivery, detEnter.Add(90*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.DetentionMinutes != 0 {
		t.Errorf("detention minutes = %d, want 0", rec.DetentionMinutes)
	}
	if rec.Charge != 0 {
		t.Errorf("charge = %v, want 0", rec.Charge)
	}
	if rec.Billable {
		t.Error("dwell inside free time must not be billable")
	}
}

func TestDetention_StopWithoutEnterIsNoop(t *testing.T) {
	repo := newStubDetentionRepo()
	clock := NewDetentionClock(repo, 75, zerolog.Nop())

	rec, err := clock.Stop(context.Background(), "load_unknown", domain.DetentionPickup, detEnter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != nil {
		t.Error("exit without matching enter must not fabricate billing")
	}
}

func TestDetention_DoubleStopSecondIsNoop(t *testing.T) {
	repo := newStubDetentionRepo()
	clock := NewDetentionClock(repo, 75, zerolog.Nop())

	_ = clock.Start(context.Background(), "load_1", domain.DetentionPickup, "drv_1", "gf_1", detEnter)
	first, _ := clock.Stop(context.Background(), "load_1", domain.DetentionPickup, detEnter.Add(150*time.Minute))
	second, err := clock.Stop(context.Background(), "load_1", domain.DetentionPickup, detEnter.Add(160*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == nil || second != nil {
		t.Error("only the first exit may close the record")
	}
	if len(repo.finalized) != 1 {
		t.Errorf("expected exactly one finalize, got %d", len(repo.finalized))
	}
}

func TestDetention_ChargeRoundsToCents(t *testing.T) {
	repo := newStubDetentionRepo()
	// Awkward rate so minutes/60*rate produces sub-cent precision.
	clock := NewDetentionClock(repo, 66.67, zerolog.Nop())

	_ = clock.Start(context.Background(), "load_1", domain.DetentionPickup, "drv_1", "gf_1", detEnter)
	rec, err := clock.Stop(context.Background(), "load_1", domain.DetentionPickup, detEnter.Add(127*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 7 min * 66.67/60 = 7.77816..., rounds to 7.78.
	if rec.Charge != 7.78 {
		t.Errorf("charge = %v, want 7.78", rec.Charge)
	}
}
