package planner

import (
	"strings"

	"tripmate/pkg/utils"
)

// ItineraryStop is one leg of a plan. A stop whose Type is "City" (or whose
// IsCity flag is set) is a city-level anchor waiting to be resolved into a
// concrete point of interest.
type ItineraryStop struct {
	Name        string
	Lat         *float64
	Lng         *float64
	Type        string
	IsCity      bool
	City        string
	Province    string
	Rating      *float64
	RatingCount int
	Description string
	Activities  []string
	LocationID  string

	// DistanceFromPrev is the leg distance in km, nil for the first stop
	// and for legs missing coordinates.
	DistanceFromPrev *float64

	// OriginalCityLabel preserves the anchor label a stop replaced, for
	// traceability.
	OriginalCityLabel string
}

func (s ItineraryStop) Point() Point { return Point{Lat: s.Lat, Lng: s.Lng} }

func (s ItineraryStop) isCityAnchor() bool {
	return s.IsCity || strings.EqualFold(strings.TrimSpace(s.Type), "City")
}

// StopSnapshot is the reduced start/end view carried on a plan.
type StopSnapshot struct {
	Name     string
	Province string
	Lat      *float64
	Lng      *float64
}

func snapshotOf(s ItineraryStop) *StopSnapshot {
	return &StopSnapshot{Name: s.Name, Province: s.Province, Lat: s.Lat, Lng: s.Lng}
}

// Plan is the assembled itinerary handed back to the caller. Instances are
// never mutated in place: every edit produces a fresh, fully rebuilt plan.
type Plan struct {
	Itinerary        []ItineraryStop
	TotalDistanceKm  *float64
	ProvinceCorridor []string
	Start            *StopSnapshot
	End              *StopSnapshot
}

// AssemblePlan runs the full pipeline over a raw upstream itinerary:
// normalize against the catalog, collapse adjacent duplicates, rebuild leg
// distances and derive the province corridor. An empty itinerary passes
// through as a degenerate plan carrying the upstream's own start/end.
func AssemblePlan(raw []ItineraryStop, catalog []PointOfInterest, upstreamStart, upstreamEnd *StopSnapshot) Plan {
	if len(raw) == 0 {
		return Plan{
			Itinerary:        []ItineraryStop{},
			ProvinceCorridor: []string{},
			Start:            upstreamStart,
			End:              upstreamEnd,
		}
	}

	stops := Normalize(raw, catalog)
	stops = Dedupe(stops)
	stops, total := RebuildDistances(stops)

	return Plan{
		Itinerary:        stops,
		TotalDistanceKm:  total,
		ProvinceCorridor: BuildCorridor(stops),
		Start:            snapshotOf(stops[0]),
		End:              snapshotOf(stops[len(stops)-1]),
	}
}

// ReplaceStop swaps the candidate's fields into the stop at index and
// rebuilds all leg distances. The first and last stops are fixed and cannot
// be replaced; a candidate without coordinates is rejected. The province
// corridor is deliberately left as generated (see DESIGN.md).
func ReplaceStop(plan Plan, index int, candidate ItineraryStop) (Plan, error) {
	if index <= 0 || index >= len(plan.Itinerary)-1 {
		return plan, utils.ErrFixedStop
	}
	if !candidate.Point().HasCoords() {
		return plan, utils.ErrMissingCoordinates
	}

	stops := copyStops(plan.Itinerary)
	stops[index] = spliceStop(stops[index], candidate)

	stops, total := RebuildDistances(stops)

	out := plan
	out.Itinerary = stops
	out.TotalDistanceKm = total
	out.ProvinceCorridor = append([]string(nil), plan.ProvinceCorridor...)
	return out, nil
}

// spliceStop overlays the candidate onto the prior stop, keeping prior
// fields the candidate does not provide. The result is a concrete stop, so
// anchor provenance is dropped.
func spliceStop(prior, candidate ItineraryStop) ItineraryStop {
	out := prior
	if candidate.Name != "" {
		out.Name = candidate.Name
	}
	out.Lat = candidate.Lat
	out.Lng = candidate.Lng
	if candidate.Type != "" {
		out.Type = candidate.Type
	}
	if candidate.City != "" {
		out.City = candidate.City
	}
	if p := canonicalProvince(candidate.Province); p != "" {
		out.Province = p
	}
	if candidate.Rating != nil {
		out.Rating = candidate.Rating
	}
	if candidate.RatingCount != 0 {
		out.RatingCount = candidate.RatingCount
	}
	if candidate.Description != "" {
		out.Description = candidate.Description
	}
	if len(candidate.Activities) > 0 {
		out.Activities = candidate.Activities
	}
	if candidate.LocationID != "" {
		out.LocationID = candidate.LocationID
	}
	out.IsCity = false
	out.OriginalCityLabel = ""
	return out
}

func copyStops(stops []ItineraryStop) []ItineraryStop {
	return append([]ItineraryStop(nil), stops...)
}
