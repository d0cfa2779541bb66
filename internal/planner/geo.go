package planner

import "math"

const earthRadiusKm = 6371.0

// Point is an optional coordinate pair. Lat and Lng are either both set or
// both nil.
type Point struct {
	Lat *float64
	Lng *float64
}

func (p Point) HasCoords() bool {
	return p.Lat != nil && p.Lng != nil
}

// DistanceKm returns the great-circle distance between two points in
// kilometers using the haversine formula. When either point lacks
// coordinates it returns +Inf so callers can treat the pair as unbounded
// instead of handling an error.
func DistanceKm(a, b Point) float64 {
	if !a.HasCoords() || !b.HasCoords() {
		return math.Inf(1)
	}

	dLat := degToRad(*b.Lat - *a.Lat)
	dLng := degToRad(*b.Lng - *a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat +
		math.Cos(degToRad(*a.Lat))*math.Cos(degToRad(*b.Lat))*sinLng*sinLng

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

func Float(v float64) *float64 { return &v }
