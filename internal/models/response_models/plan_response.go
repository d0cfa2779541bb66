package response_models

import "tripmate/internal/planner"

// Stop is the wire form of one itinerary leg. Optional numbers are
// pointers so "absent" survives a round trip through JSON.
type Stop struct {
	Name              string   `json:"name"`
	Lat               *float64 `json:"lat,omitempty"`
	Lng               *float64 `json:"lng,omitempty"`
	Type              string   `json:"type,omitempty"`
	IsCity            bool     `json:"is_city,omitempty"`
	City              string   `json:"city,omitempty"`
	Province          string   `json:"province,omitempty"`
	Rating            *float64 `json:"rating,omitempty"`
	RatingCount       int      `json:"rating_count,omitempty"`
	Description       string   `json:"description,omitempty"`
	Activities        []string `json:"activities,omitempty"`
	LocationID        string   `json:"location_id,omitempty"`
	DistanceFromPrev  *float64 `json:"distance_from_prev,omitempty"`
	OriginalCityLabel string   `json:"original_city_label,omitempty"`
}

type StopSnapshot struct {
	Name     string   `json:"name"`
	Province string   `json:"province,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
}

type Plan struct {
	Itinerary        []Stop        `json:"itinerary"`
	TotalDistanceKm  *float64      `json:"total_distance_km,omitempty"`
	ProvinceCorridor []string      `json:"province_corridor"`
	Start            *StopSnapshot `json:"start,omitempty"`
	End              *StopSnapshot `json:"end,omitempty"`
	Summary          string        `json:"summary,omitempty"`
}

func StopFromPlanner(s planner.ItineraryStop) Stop {
	return Stop{
		Name:              s.Name,
		Lat:               s.Lat,
		Lng:               s.Lng,
		Type:              s.Type,
		IsCity:            s.IsCity,
		City:              s.City,
		Province:          s.Province,
		Rating:            s.Rating,
		RatingCount:       s.RatingCount,
		Description:       s.Description,
		Activities:        s.Activities,
		LocationID:        s.LocationID,
		DistanceFromPrev:  s.DistanceFromPrev,
		OriginalCityLabel: s.OriginalCityLabel,
	}
}

func (s Stop) ToPlanner() planner.ItineraryStop {
	return planner.ItineraryStop{
		Name:              s.Name,
		Lat:               s.Lat,
		Lng:               s.Lng,
		Type:              s.Type,
		IsCity:            s.IsCity,
		City:              s.City,
		Province:          s.Province,
		Rating:            s.Rating,
		RatingCount:       s.RatingCount,
		Description:       s.Description,
		Activities:        s.Activities,
		LocationID:        s.LocationID,
		DistanceFromPrev:  s.DistanceFromPrev,
		OriginalCityLabel: s.OriginalCityLabel,
	}
}

func snapshotFromPlanner(s *planner.StopSnapshot) *StopSnapshot {
	if s == nil {
		return nil
	}
	return &StopSnapshot{Name: s.Name, Province: s.Province, Lat: s.Lat, Lng: s.Lng}
}

func (s *StopSnapshot) ToPlanner() *planner.StopSnapshot {
	if s == nil {
		return nil
	}
	return &planner.StopSnapshot{Name: s.Name, Province: s.Province, Lat: s.Lat, Lng: s.Lng}
}

func PlanFromPlanner(p planner.Plan) Plan {
	stops := make([]Stop, 0, len(p.Itinerary))
	for _, s := range p.Itinerary {
		stops = append(stops, StopFromPlanner(s))
	}
	corridor := p.ProvinceCorridor
	if corridor == nil {
		corridor = []string{}
	}
	return Plan{
		Itinerary:        stops,
		TotalDistanceKm:  p.TotalDistanceKm,
		ProvinceCorridor: corridor,
		Start:            snapshotFromPlanner(p.Start),
		End:              snapshotFromPlanner(p.End),
	}
}

func (p Plan) ToPlanner() planner.Plan {
	stops := make([]planner.ItineraryStop, 0, len(p.Itinerary))
	for _, s := range p.Itinerary {
		stops = append(stops, s.ToPlanner())
	}
	return planner.Plan{
		Itinerary:        stops,
		TotalDistanceKm:  p.TotalDistanceKm,
		ProvinceCorridor: append([]string(nil), p.ProvinceCorridor...),
		Start:            p.Start.ToPlanner(),
		End:              p.End.ToPlanner(),
	}
}
