package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"tripmate/internal/models/response_models"
	"tripmate/internal/planner"
	"tripmate/pkg/utils"
)

// GenerateRequest is the outbound payload of the upstream planner.
type GenerateRequest struct {
	StartCity              string   `json:"start_city,omitempty"`
	StartLat               *float64 `json:"start_lat,omitempty"`
	StartLng               *float64 `json:"start_lng,omitempty"`
	EndCity                string   `json:"end_city"`
	PlanPool               []string `json:"plan_pool,omitempty"`
	IncludeCityAttractions bool     `json:"include_city_attractions"`
	MinAttractions         int      `json:"min_attractions"`
	CorridorRadiusKm       float64  `json:"corridor_radius_km"`
}

// RawPlanResponse keeps upstream stops as raw records: the planner uses
// mixed field names, resolved later through the alias tables.
type RawPlanResponse struct {
	Itinerary []planner.RawRecord `json:"itinerary"`
	Start     planner.RawRecord   `json:"start"`
	End       planner.RawRecord   `json:"end"`
}

type OptimizeRequest struct {
	Itinerary        []response_models.Stop `json:"itinerary"`
	CorridorRadiusKm float64                `json:"corridor_radius_km,omitempty"`
}

type OptimizeResponse struct {
	Status          string              `json:"status"`
	Itinerary       []planner.RawRecord `json:"itinerary"`
	TotalDistanceKm *float64            `json:"total_distance_km,omitempty"`
}

type RoutingEngineService interface {
	GeneratePlan(ctx context.Context, req GenerateRequest) (*RawPlanResponse, error)
	Optimize(ctx context.Context, req OptimizeRequest) (*OptimizeResponse, error)
}

// RoutingEngineClient talks to the external route planner/optimizer over
// HTTP. No retries here: a failed call surfaces ErrUpstreamUnavailable and
// the caller keeps its previous plan.
type RoutingEngineClient struct {
	HTTP    *http.Client
	BaseURL string
}

func NewRoutingEngineClient() *RoutingEngineClient {
	base := os.Getenv("ROUTING_ENGINE_URL")
	if base == "" {
		panic("ROUTING_ENGINE_URL is empty")
	}
	return &RoutingEngineClient{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		BaseURL: base,
	}
}

func (c *RoutingEngineClient) GeneratePlan(ctx context.Context, req GenerateRequest) (*RawPlanResponse, error) {
	var out RawPlanResponse
	if err := c.post(ctx, "/plan/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RoutingEngineClient) Optimize(ctx context.Context, req OptimizeRequest) (*OptimizeResponse, error) {
	var out OptimizeResponse
	if err := c.post(ctx, "/plan/optimize", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RoutingEngineClient) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("routing engine encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("routing engine request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: routing engine status %s", utils.ErrUpstreamUnavailable, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: routing engine decode: %v", utils.ErrUpstreamUnavailable, err)
	}
	return nil
}
