package service

import (
	"time"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// ETAConfidence grades how trustworthy an estimate is at its distance.
type ETAConfidence string

const (
	ConfidenceHigh   ETAConfidence = "high"
	ConfidenceMedium ETAConfidence = "medium"
	ConfidenceLow    ETAConfidence = "low"
)

// ETA heuristics. This is a static model, not a traffic prediction engine:
// great-circle distance scaled by a road factor, a fixed average speed, a
// time-of-day surcharge, and the mandatory rest break on long remainders.
const (
	roadFactor          = 1.3
	averageSpeedMph     = 55.0
	rushHourSurcharge   = 0.20
	offPeakSurcharge    = 0.05
	restBreakThreshold  = 8 * time.Hour
	restBreakDuration   = 30 * time.Minute
	highConfidenceMiles = 200.0
	medConfidenceMiles  = 500.0
)

// ETAResult is the full estimate breakdown.
type ETAResult struct {
	RemainingMiles float64       `json:"remaining_miles"`
	DriveTime      time.Duration `json:"-"`
	TrafficDelay   time.Duration `json:"-"`
	RestBreak      time.Duration `json:"-"`
	ETA            time.Time     `json:"eta"`
	Confidence     ETAConfidence `json:"confidence"`
	DriveMinutes   int           `json:"drive_minutes"`
	TrafficMinutes int           `json:"traffic_minutes"`
	RestMinutes    int           `json:"rest_minutes"`
}

// ETAEngine produces arrival estimates from a current position.
type ETAEngine struct {
	now func() time.Time
}

func NewETAEngine() *ETAEngine {
	return &ETAEngine{now: time.Now}
}

// NewETAEngineWithClock fixes the clock, for tests.
func NewETAEngineWithClock(now func() time.Time) *ETAEngine {
	return &ETAEngine{now: now}
}

// Estimate computes the ETA from current to destination starting at the
// engine's current time.
func (e *ETAEngine) Estimate(current, destination domain.Coordinates) ETAResult {
	at := e.now()
	miles := domain.Distance(current, destination) * roadFactor
	drive := time.Duration(miles / averageSpeedMph * float64(time.Hour))

	surcharge := offPeakSurcharge
	if isRushHour(at) {
		surcharge = rushHourSurcharge
	}
	traffic := time.Duration(float64(drive) * surcharge)

	var rest time.Duration
	if drive+traffic > restBreakThreshold {
		rest = restBreakDuration
	}

	total := drive + traffic + rest

	confidence := ConfidenceLow
	switch {
	case miles < highConfidenceMiles:
		confidence = ConfidenceHigh
	case miles < medConfidenceMiles:
		confidence = ConfidenceMedium
	}

	return ETAResult{
		RemainingMiles: miles,
		DriveTime:      drive,
		TrafficDelay:   traffic,
		RestBreak:      rest,
		ETA:            at.Add(total),
		Confidence:     confidence,
		DriveMinutes:   int(drive.Minutes()),
		TrafficMinutes: int(traffic.Minutes()),
		RestMinutes:    int(rest.Minutes()),
	}
}

// isRushHour covers the morning and evening commute windows.
func isRushHour(t time.Time) bool {
	h := t.Hour()
	return (h >= 7 && h < 9) || (h >= 16 && h < 19)
}
