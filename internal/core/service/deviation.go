package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fleetedge/telematics-core/internal/core/domain"
)

// DeviationLevel classifies how far off-route a vehicle is.
type DeviationLevel string

const (
	DeviationNone        DeviationLevel = "on_route"
	DeviationMinor       DeviationLevel = "minor"
	DeviationSignificant DeviationLevel = "significant"
)

const (
	onRouteThresholdMiles = 2.0
	minorThresholdMiles   = 5.0
)

// DeviationResult is a pure query result; nothing is persisted.
type DeviationResult struct {
	Level         DeviationLevel `json:"level"`
	DistanceMiles float64        `json:"distance_miles"`
}

// RouteDeviationDetector measures a live point against a load's active route
// polyline.
type RouteDeviationDetector struct{}

func NewRouteDeviationDetector() *RouteDeviationDetector {
	return &RouteDeviationDetector{}
}

// Check finds the minimum great-circle distance from the point to any route
// vertex and classifies it. An empty route is significant by definition.
func (d *RouteDeviationDetector) Check(route []domain.Coordinates, point domain.Coordinates) DeviationResult {
	if len(route) == 0 {
		return DeviationResult{Level: DeviationSignificant}
	}

	minDist := domain.Distance(point, route[0])
	for _, vertex := range route[1:] {
		if dist := domain.Distance(point, vertex); dist < minDist {
			minDist = dist
		}
	}

	level := DeviationNone
	switch {
	case minDist > minorThresholdMiles:
		level = DeviationSignificant
	case minDist > onRouteThresholdMiles:
		level = DeviationMinor
	}
	return DeviationResult{Level: level, DistanceMiles: minDist}
}

// DecodePolyline parses the simple delimited polyline format produced by the
// routing system: "lat,lng;lat,lng;...". This core does not compute routes.
func DecodePolyline(encoded string) ([]domain.Coordinates, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, nil
	}

	pairs := strings.Split(encoded, ";")
	route := make([]domain.Coordinates, 0, len(pairs))
	for i, pair := range pairs {
		parts := strings.Split(strings.TrimSpace(pair), ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("polyline vertex %d: want lat,lng got %q", i, pair)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("polyline vertex %d: bad latitude: %w", i, err)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("polyline vertex %d: bad longitude: %w", i, err)
		}
		route = append(route, domain.Coordinates{Lat: lat, Lng: lng})
	}
	return route, nil
}
