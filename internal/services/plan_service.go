package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/planner"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

// TripSummarizer is the optional natural-language summary generator.
type TripSummarizer interface {
	SummarizeTrip(ctx context.Context, stopNames, provinces []string, totalKm float64) (string, error)
}

type PlanServiceInterface interface {
	GeneratePlan(ctx context.Context, accountID uuid.UUID, req request_models.GeneratePlanRequest) (response_models.Plan, error)
	ReplaceStop(plan response_models.Plan, index int, candidate response_models.Stop) (response_models.Plan, error)
	Reoptimize(ctx context.Context, plan response_models.Plan) (response_models.Plan, error)
}

type PlanService struct {
	locationRepo repositories.LocationRepository
	routing      RoutingEngineService
	summarizer   TripSummarizer
}

// NewPlanService wires the plan pipeline. summarizer may be nil, in which
// case summary requests are silently skipped.
func NewPlanService(locationRepo repositories.LocationRepository, routing RoutingEngineService, summarizer TripSummarizer) PlanServiceInterface {
	return &PlanService{
		locationRepo: locationRepo,
		routing:      routing,
		summarizer:   summarizer,
	}
}

// GeneratePlan builds the user's catalog fresh from their stored location
// collections, asks the routing engine for a raw itinerary and runs the
// normalization pipeline over it.
func (p *PlanService) GeneratePlan(ctx context.Context, accountID uuid.UUID, req request_models.GeneratePlanRequest) (response_models.Plan, error) {
	catalog, err := p.buildCatalog(ctx, accountID)
	if err != nil {
		return response_models.Plan{}, err
	}

	upstream, err := p.routing.GeneratePlan(ctx, GenerateRequest{
		StartCity:              req.StartCity,
		StartLat:               req.StartLat,
		StartLng:               req.StartLng,
		EndCity:                req.EndCity,
		PlanPool:               req.PlanPool,
		IncludeCityAttractions: req.IncludeCityAttractions,
		MinAttractions:         req.MinAttractions,
		CorridorRadiusKm:       req.CorridorRadiusKm,
	})
	if err != nil {
		return response_models.Plan{}, err
	}

	raw := planner.StopsFromRecords(upstream.Itinerary)
	plan := planner.AssemblePlan(raw, catalog, snapshotFromRecord(upstream.Start), snapshotFromRecord(upstream.End))

	out := response_models.PlanFromPlanner(plan)
	if req.WithSummary {
		out.Summary = p.summarize(ctx, plan)
	}
	return out, nil
}

// ReplaceStop is a purely local edit: splice the candidate in, rebuild all
// leg distances. The corridor stays as generated.
func (p *PlanService) ReplaceStop(plan response_models.Plan, index int, candidate response_models.Stop) (response_models.Plan, error) {
	edited, err := planner.ReplaceStop(plan.ToPlanner(), index, candidate.ToPlanner())
	if err != nil {
		return plan, err
	}
	return response_models.PlanFromPlanner(edited), nil
}

// Reoptimize sends the itinerary back to the optimizer for re-sequencing.
// Any upstream failure, including a mismatched stop count, leaves the prior
// plan untouched.
func (p *PlanService) Reoptimize(ctx context.Context, plan response_models.Plan) (response_models.Plan, error) {
	if len(plan.Itinerary) < 2 {
		return plan, utils.ErrInvalidInput
	}

	outbound := append([]response_models.Stop(nil), plan.Itinerary...)
	// The optimizer treats the endpoints as fixed city anchors.
	outbound[0].Type = "City"
	outbound[0].IsCity = true
	outbound[len(outbound)-1].Type = "City"
	outbound[len(outbound)-1].IsCity = true

	resp, err := p.routing.Optimize(ctx, OptimizeRequest{Itinerary: outbound})
	if err != nil {
		return plan, err
	}
	if !strings.EqualFold(resp.Status, "ok") {
		return plan, fmt.Errorf("%w: optimizer status %q", utils.ErrUpstreamUnavailable, resp.Status)
	}
	if len(resp.Itinerary) != len(plan.Itinerary) {
		return plan, fmt.Errorf("%w: optimizer returned %d stops, expected %d",
			utils.ErrUpstreamUnavailable, len(resp.Itinerary), len(plan.Itinerary))
	}

	stops := planner.StopsFromRecords(resp.Itinerary)
	prior := plan.ToPlanner()
	// The optimizer does not echo location ids back.
	for i := range stops {
		if stops[i].LocationID == "" {
			stops[i].LocationID = prior.Itinerary[i].LocationID
		}
	}

	total := resp.TotalDistanceKm
	if total == nil || !legsWellTyped(stops) {
		stops, total = planner.RebuildDistances(stops)
	}

	rebuilt := planner.Plan{
		Itinerary:        stops,
		TotalDistanceKm:  total,
		ProvinceCorridor: planner.BuildCorridor(stops),
	}
	out := response_models.PlanFromPlanner(rebuilt)
	out.Start = &response_models.StopSnapshot{
		Name: out.Itinerary[0].Name, Province: out.Itinerary[0].Province,
		Lat: out.Itinerary[0].Lat, Lng: out.Itinerary[0].Lng,
	}
	last := out.Itinerary[len(out.Itinerary)-1]
	out.End = &response_models.StopSnapshot{
		Name: last.Name, Province: last.Province, Lat: last.Lat, Lng: last.Lng,
	}
	return out, nil
}

func (p *PlanService) buildCatalog(ctx context.Context, accountID uuid.UUID) ([]planner.PointOfInterest, error) {
	var entries []planner.PointOfInterest
	for _, collection := range []string{
		db_models.CollectionPlanPool,
		db_models.CollectionRecommended,
		db_models.CollectionLastRecommendations,
	} {
		locations, err := p.locationRepo.ListByCollection(ctx, accountID, collection)
		if err != nil {
			log.Printf("Error loading %s: %v", collection, err)
			return nil, utils.ErrDatabaseError
		}
		for _, loc := range locations {
			entries = append(entries, locationToPOI(loc))
		}
	}
	return planner.DedupeCatalog(entries), nil
}

func (p *PlanService) summarize(ctx context.Context, plan planner.Plan) string {
	if p.summarizer == nil || len(plan.Itinerary) == 0 {
		return ""
	}
	names := make([]string, 0, len(plan.Itinerary))
	for _, s := range plan.Itinerary {
		names = append(names, s.Name)
	}
	total := 0.0
	if plan.TotalDistanceKm != nil {
		total = *plan.TotalDistanceKm
	}
	summary, err := p.summarizer.SummarizeTrip(ctx, names, plan.ProvinceCorridor, total)
	if err != nil {
		log.Printf("Trip summary failed: %v", err)
		return ""
	}
	return summary
}

func locationToPOI(loc db_models.SavedLocation) planner.PointOfInterest {
	return planner.PointOfInterest{
		LocationID:  loc.ID.String(),
		Name:        loc.Name,
		City:        loc.City,
		Province:    loc.Province,
		Lat:         loc.Latitude,
		Lng:         loc.Longitude,
		AvgRating:   loc.AvgRating,
		RatingCount: loc.RatingCount,
		Description: loc.Description,
		Activities:  loc.Activities,
		Type:        loc.Category,
	}
}

func snapshotFromRecord(r planner.RawRecord) *planner.StopSnapshot {
	if len(r) == 0 {
		return nil
	}
	stop := planner.StopFromRecord(r)
	return &planner.StopSnapshot{Name: stop.Name, Province: stop.Province, Lat: stop.Lat, Lng: stop.Lng}
}

func legsWellTyped(stops []planner.ItineraryStop) bool {
	for i := 1; i < len(stops); i++ {
		if stops[i].DistanceFromPrev == nil {
			return false
		}
	}
	return true
}
