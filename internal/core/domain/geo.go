package domain

import "math"

// Earth radius in the two unit systems used across the fleet.
const (
	earthRadiusMiles = 3959.0
	earthRadiusKm    = 6371.0
)

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Distance returns the great-circle distance between a and b in statute miles
// using the haversine formula. NaN inputs propagate; range validation is the
// caller's responsibility.
func Distance(a, b Coordinates) float64 {
	return haversine(a, b) * earthRadiusMiles
}

// DistanceKm returns the great-circle distance between a and b in kilometres.
func DistanceKm(a, b Coordinates) float64 {
	return haversine(a, b) * earthRadiusKm
}

// haversine returns the central angle between two points in radians.
func haversine(a, b Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
