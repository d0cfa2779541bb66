package request_models

import "tripmate/internal/models/response_models"

type GeneratePlanRequest struct {
	StartCity              string   `json:"start_city"`
	StartLat               *float64 `json:"start_lat,omitempty"`
	StartLng               *float64 `json:"start_lng,omitempty"`
	EndCity                string   `json:"end_city" binding:"required"`
	PlanPool               []string `json:"plan_pool,omitempty"`
	IncludeCityAttractions bool     `json:"include_city_attractions"`
	MinAttractions         int      `json:"min_attractions"`
	CorridorRadiusKm       float64  `json:"corridor_radius_km"`
	WithSummary            bool     `json:"with_summary"`
}

// ReplaceStopRequest edits one interior stop of a client-held plan.
type ReplaceStopRequest struct {
	Plan      response_models.Plan `json:"plan" binding:"required"`
	Index     int                  `json:"index"`
	Candidate response_models.Stop `json:"candidate" binding:"required"`
}

type ReoptimizeRequest struct {
	Plan response_models.Plan `json:"plan" binding:"required"`
}
