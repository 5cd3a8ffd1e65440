package service

import (
	"math"
	"testing"
	"time"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

var (
	fortWorth = domain.Coordinates{Lat: 32.7555, Lng: -97.3308}
	amarillo  = domain.Coordinates{Lat: 35.1920, Lng: -101.8313}
	elPaso    = domain.Coordinates{Lat: 31.7619, Lng: -106.4850}
)

// 2 PM on a Tuesday: off-peak.
var offPeak = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

// 8 AM: morning rush.
var morningRush = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func TestETA_ShortHaulHighConfidence(t *testing.T) {
	engine := NewETAEngineWithClock(fixedClock(offPeak))

	// Fort Worth to Amarillo is ~308 great-circle miles, ~400 road miles.
	result := engine.Estimate(fortWorth, amarillo)

	if result.Confidence != ConfidenceMedium {
		t.Errorf("confidence = %s, want medium for ~400 road miles", result.Confidence)
	}
	if result.RemainingMiles < 380 || result.RemainingMiles > 420 {
		t.Errorf("remaining miles = %.0f, want ~400", result.RemainingMiles)
	}
	// 400mi / 55mph ~ 7.3h drive, 5%% traffic, no rest break.
	if result.RestMinutes != 0 {
		t.Errorf("rest minutes = %d, want 0 under the 8h threshold", result.RestMinutes)
	}
	expectedTraffic := float64(result.DriveMinutes) * 0.05
	if math.Abs(float64(result.TrafficMinutes)-expectedTraffic) > 1 {
		t.Errorf("traffic minutes = %d, want ~%.0f (off-peak 5%%)", result.TrafficMinutes, expectedTraffic)
	}
}

func TestETA_RushHourSurcharge(t *testing.T) {
	offPeakResult := NewETAEngineWithClock(fixedClock(offPeak)).Estimate(fortWorth, amarillo)
	rushResult := NewETAEngineWithClock(fixedClock(morningRush)).Estimate(fortWorth, amarillo)

	if rushResult.TrafficMinutes <= offPeakResult.TrafficMinutes {
		t.Errorf("rush traffic %d must exceed off-peak %d", rushResult.TrafficMinutes, offPeakResult.TrafficMinutes)
	}
	expected := float64(rushResult.DriveMinutes) * 0.20
	if math.Abs(float64(rushResult.TrafficMinutes)-expected) > 1 {
		t.Errorf("rush traffic minutes = %d, want ~%.0f (20%%)", rushResult.TrafficMinutes, expected)
	}
}

func TestETA_LongHaulRestBreak(t *testing.T) {
	engine := NewETAEngineWithClock(fixedClock(offPeak))

	// Fort Worth to El Paso is ~520 great-circle miles, ~680 road miles:
	// over 12h of drive time, so the mandatory rest break applies.
	result := engine.Estimate(fortWorth, elPaso)

	if result.RestMinutes != 30 {
		t.Errorf("rest minutes = %d, want 30 past the 8h threshold", result.RestMinutes)
	}
	if result.Confidence != ConfidenceLow {
		t.Errorf("confidence = %s, want low past 500 road miles", result.Confidence)
	}
}

func TestETA_ArrivalIsStartPlusComponents(t *testing.T) {
	engine := NewETAEngineWithClock(fixedClock(offPeak))
	result := engine.Estimate(fortWorth, amarillo)

	want := offPeak.Add(result.DriveTime + result.TrafficDelay + result.RestBreak)
	if !result.ETA.Equal(want) {
		t.Errorf("eta = %v, want %v", result.ETA, want)
	}
}

func TestETA_ZeroDistance(t *testing.T) {
	engine := NewETAEngineWithClock(fixedClock(offPeak))
	result := engine.Estimate(fortWorth, fortWorth)

	if result.RemainingMiles != 0 {
		t.Errorf("remaining = %v, want 0", result.RemainingMiles)
	}
	if !result.ETA.Equal(offPeak) {
		t.Errorf("eta for zero distance = %v, want now", result.ETA)
	}
	if result.Confidence != ConfidenceHigh {
		t.Errorf("confidence = %s, want high", result.Confidence)
	}
}
