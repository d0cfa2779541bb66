package planner

// Two stops closer than this are treated as the same place even when their
// names differ.
const samePlaceRadiusKm = 0.25

// Dedupe collapses adjacent stops that resolve to the same place, keeping
// the richer record of each pair. Only neighbours are compared: the same
// place appearing again later in the itinerary is a legitimate revisit.
func Dedupe(stops []ItineraryStop) []ItineraryStop {
	out := make([]ItineraryStop, 0, len(stops))

	for _, stop := range stops {
		if len(out) == 0 {
			out = append(out, stop)
			continue
		}
		last := out[len(out)-1]
		if !samePlace(last, stop) {
			out = append(out, stop)
			continue
		}
		if richness(stop) >= richness(last) {
			out[len(out)-1] = stop
		}
	}
	return out
}

func samePlace(a, b ItineraryStop) bool {
	if catalogKey(a.Name, a.City) == catalogKey(b.Name, b.City) {
		return true
	}
	return DistanceKm(a.Point(), b.Point()) < samePlaceRadiusKm
}

// richness scores how much descriptive data a stop carries. Concrete stops
// outrank city-anchor remnants via the flat bonus; the exact weighting is a
// policy constant.
func richness(s ItineraryStop) int {
	score := 0
	if s.RatingCount > 0 {
		score++
	}
	if s.Rating != nil {
		score++
	}
	if len(s.Description) > 0 {
		score++
	}
	if len(s.Activities) > 0 {
		score++
	}
	if s.OriginalCityLabel == "" {
		score++
	}
	return score
}
