package service

import (
	"testing"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// Route roughly along I-35W between Fort Worth and Denton, vertices a few
// miles apart.
var testRoute = []domain.Coordinates{
	{Lat: 32.7555, Lng: -97.3308},
	{Lat: 32.9000, Lng: -97.3200},
	{Lat: 33.0500, Lng: -97.2900},
	{Lat: 33.2148, Lng: -97.1331},
}

func TestDeviation_OnRoute(t *testing.T) {
	d := NewRouteDeviationDetector()

	// A point essentially on a vertex.
	result := d.Check(testRoute, domain.Coordinates{Lat: 32.9010, Lng: -97.3210})
	if result.Level != DeviationNone {
		t.Errorf("level = %s, want on_route (%.2f mi)", result.Level, result.DistanceMiles)
	}
}

func TestDeviation_Minor(t *testing.T) {
	d := NewRouteDeviationDetector()

	// ~3.5 miles west of the nearest vertex (0.06 deg lng at this latitude).
	result := d.Check(testRoute, domain.Coordinates{Lat: 32.9000, Lng: -97.3800})
	if result.Level != DeviationMinor {
		t.Errorf("level = %s (%.2f mi), want minor", result.Level, result.DistanceMiles)
	}
	if result.DistanceMiles <= 2.0 || result.DistanceMiles > 5.0 {
		t.Errorf("distance = %.2f mi, want between 2 and 5", result.DistanceMiles)
	}
}

func TestDeviation_Significant(t *testing.T) {
	d := NewRouteDeviationDetector()

	// ~12 miles east of the corridor.
	result := d.Check(testRoute, domain.Coordinates{Lat: 32.9000, Lng: -97.1100})
	if result.Level != DeviationSignificant {
		t.Errorf("level = %s (%.2f mi), want significant", result.Level, result.DistanceMiles)
	}
}

func TestDeviation_EmptyRoute(t *testing.T) {
	d := NewRouteDeviationDetector()

	result := d.Check(nil, domain.Coordinates{Lat: 32.9, Lng: -97.0})
	if result.Level != DeviationSignificant {
		t.Errorf("empty route must be significant, got %s", result.Level)
	}
}

func TestDecodePolyline(t *testing.T) {
	route, err := DecodePolyline("32.7555,-97.3308; 32.9000,-97.3200 ;33.0500,-97.2900")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(route) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(route))
	}
	if route[1].Lat != 32.9 || route[1].Lng != -97.32 {
		t.Errorf("vertex 1 = %+v", route[1])
	}
}

func TestDecodePolyline_Empty(t *testing.T) {
	route, err := DecodePolyline("  ")
	if err != nil || route != nil {
		t.Errorf("blank polyline: got (%v, %v), want (nil, nil)", route, err)
	}
}

func TestDecodePolyline_Malformed(t *testing.T) {
	cases := []string{"32.75", "32.75,-97.33,12", "abc,-97.33", "32.75,xyz"}
	for _, encoded := range cases {
		if _, err := DecodePolyline(encoded); err == nil {
			t.Errorf("expected error for %q", encoded)
		}
	}
}
