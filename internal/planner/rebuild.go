package planner

import "math"

// RebuildDistances recomputes every leg distance from scratch. The first
// stop never carries a distance; legs missing coordinates on either end
// stay nil. The returned total sums the defined legs and is nil for an
// empty itinerary.
func RebuildDistances(stops []ItineraryStop) ([]ItineraryStop, *float64) {
	if len(stops) == 0 {
		return []ItineraryStop{}, nil
	}

	out := copyStops(stops)
	out[0].DistanceFromPrev = nil

	total := 0.0
	for i := 1; i < len(out); i++ {
		d := DistanceKm(out[i-1].Point(), out[i].Point())
		if math.IsInf(d, 1) {
			out[i].DistanceFromPrev = nil
			continue
		}
		out[i].DistanceFromPrev = Float(d)
		total += d
	}
	return out, Float(total)
}

// BuildCorridor derives the ordered list of distinct provinces the
// itinerary passes through, in first-seen order. Unknown provinces are
// skipped.
func BuildCorridor(stops []ItineraryStop) []string {
	corridor := make([]string, 0, len(stops))
	seen := make(map[string]bool, len(stops))

	for _, stop := range stops {
		province := canonicalProvince(stop.Province)
		if province == "" || seen[province] {
			continue
		}
		seen[province] = true
		corridor = append(corridor, province)
	}
	return corridor
}
