package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/planner"
	"tripmate/pkg/utils"
)

type fakeLocationRepo struct {
	byCollection map[string][]db_models.SavedLocation
	listErr      error
}

func (f *fakeLocationRepo) Insert(ctx context.Context, location *db_models.SavedLocation) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (f *fakeLocationRepo) Delete(ctx context.Context, accountID, locationID uuid.UUID) error {
	return nil
}

func (f *fakeLocationRepo) ListByCollection(ctx context.Context, accountID uuid.UUID, collection string) ([]db_models.SavedLocation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byCollection[collection], nil
}

func (f *fakeLocationRepo) ReplaceCollection(ctx context.Context, accountID uuid.UUID, collection string, locations []db_models.SavedLocation) error {
	return nil
}

type fakeRouting struct {
	genResp *RawPlanResponse
	genErr  error
	optResp *OptimizeResponse
	optErr  error

	lastGenerate GenerateRequest
	lastOptimize OptimizeRequest
}

func (f *fakeRouting) GeneratePlan(ctx context.Context, req GenerateRequest) (*RawPlanResponse, error) {
	f.lastGenerate = req
	return f.genResp, f.genErr
}

func (f *fakeRouting) Optimize(ctx context.Context, req OptimizeRequest) (*OptimizeResponse, error) {
	f.lastOptimize = req
	return f.optResp, f.optErr
}

type fakeSummarizer struct {
	summary string
	called  bool
}

func (f *fakeSummarizer) SummarizeTrip(ctx context.Context, stopNames, provinces []string, totalKm float64) (string, error) {
	f.called = true
	return f.summary, nil
}

func savedLocation(id uuid.UUID, name, city string, ratingCount int, lat, lng float64) db_models.SavedLocation {
	loc := db_models.SavedLocation{
		Name:        name,
		City:        city,
		Latitude:    planner.Float(lat),
		Longitude:   planner.Float(lng),
		RatingCount: ratingCount,
	}
	loc.ID = id
	return loc
}

func TestGeneratePlanResolvesAnchorsAgainstSavedLocations(t *testing.T) {
	fortID := uuid.New()
	repo := &fakeLocationRepo{byCollection: map[string][]db_models.SavedLocation{
		db_models.CollectionPlanPool: {
			savedLocation(fortID, "Galle Fort", "Galle", 50, 6.02, 80.21),
			savedLocation(uuid.New(), "Galle Fort B", "Galle", 10, 6.03, 80.22),
		},
	}}
	routing := &fakeRouting{genResp: &RawPlanResponse{
		Itinerary: []planner.RawRecord{
			{"Location_Name": "Colombo", "type": "City", "province": "Western", "lat": 6.9271, "lng": 79.8612},
			{"Location_Name": "Galle", "type": "City", "located_city": "Galle"},
			{"Location_Name": "Matara", "type": "City", "province": "Southern", "lat": 5.9485, "lng": 80.5353},
		},
		Start: planner.RawRecord{"name": "Colombo", "province": "Western"},
		End:   planner.RawRecord{"name": "Matara", "province": "Southern"},
	}}

	svc := NewPlanService(repo, routing, nil)
	plan, err := svc.GeneratePlan(context.Background(), uuid.New(), request_models.GeneratePlanRequest{EndCity: "Matara"})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if routing.lastGenerate.EndCity != "Matara" {
		t.Fatalf("end city not forwarded, got %q", routing.lastGenerate.EndCity)
	}
	if len(plan.Itinerary) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(plan.Itinerary))
	}
	got := plan.Itinerary[1]
	if got.Name != "Galle Fort" || got.OriginalCityLabel != "Galle" {
		t.Fatalf("anchor resolution: name=%q label=%q", got.Name, got.OriginalCityLabel)
	}
	if got.LocationID != fortID.String() {
		t.Fatalf("location id not carried from catalog: %q", got.LocationID)
	}
	if !reflect.DeepEqual(plan.ProvinceCorridor, []string{"Western", "Southern"}) {
		t.Fatalf("corridor = %v", plan.ProvinceCorridor)
	}
	if plan.Itinerary[0].DistanceFromPrev != nil {
		t.Fatalf("first stop distance must be undefined")
	}
	if plan.Itinerary[1].DistanceFromPrev == nil || plan.Itinerary[2].DistanceFromPrev == nil {
		t.Fatalf("later leg distances missing")
	}
	if plan.Summary != "" {
		t.Fatalf("summary not requested but present: %q", plan.Summary)
	}
}

func TestGeneratePlanWithSummary(t *testing.T) {
	repo := &fakeLocationRepo{}
	routing := &fakeRouting{genResp: &RawPlanResponse{
		Itinerary: []planner.RawRecord{
			{"name": "Colombo", "province": "Western", "lat": 6.9271, "lng": 79.8612},
			{"name": "Kandy", "province": "Central", "lat": 7.2906, "lng": 80.6337},
		},
	}}
	sum := &fakeSummarizer{summary: "A short coastal hop."}

	svc := NewPlanService(repo, routing, sum)
	plan, err := svc.GeneratePlan(context.Background(), uuid.New(), request_models.GeneratePlanRequest{EndCity: "Kandy", WithSummary: true})
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if !sum.called {
		t.Fatalf("summarizer not invoked")
	}
	if plan.Summary != "A short coastal hop." {
		t.Fatalf("summary = %q", plan.Summary)
	}
}

func TestGeneratePlanUpstreamFailure(t *testing.T) {
	repo := &fakeLocationRepo{}
	routing := &fakeRouting{genErr: utils.ErrUpstreamUnavailable}

	svc := NewPlanService(repo, routing, nil)
	_, err := svc.GeneratePlan(context.Background(), uuid.New(), request_models.GeneratePlanRequest{EndCity: "Kandy"})
	if !errors.Is(err, utils.ErrUpstreamUnavailable) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func threeStopWirePlan() response_models.Plan {
	total := 160.0
	return response_models.Plan{
		Itinerary: []response_models.Stop{
			{Name: "Colombo", Province: "Western", Lat: planner.Float(6.9271), Lng: planner.Float(79.8612), LocationID: "loc-1"},
			{Name: "Galle Fort", Province: "Southern", Lat: planner.Float(6.02), Lng: planner.Float(80.21), LocationID: "loc-2", DistanceFromPrev: planner.Float(110)},
			{Name: "Matara", Province: "Southern", Lat: planner.Float(5.9485), Lng: planner.Float(80.5353), LocationID: "loc-3", DistanceFromPrev: planner.Float(50)},
		},
		TotalDistanceKm:  &total,
		ProvinceCorridor: []string{"Western", "Southern"},
	}
}

func TestReoptimizeForcesCityEndpoints(t *testing.T) {
	routing := &fakeRouting{optResp: &OptimizeResponse{
		Status: "ok",
		Itinerary: []planner.RawRecord{
			{"name": "Colombo", "province": "Western", "lat": 6.9271, "lng": 79.8612},
			{"name": "Galle Fort", "province": "Southern", "lat": 6.02, "lng": 80.21},
			{"name": "Matara", "province": "Southern", "lat": 5.9485, "lng": 80.5353},
		},
	}}
	svc := NewPlanService(&fakeLocationRepo{}, routing, nil)

	if _, err := svc.Reoptimize(context.Background(), threeStopWirePlan()); err != nil {
		t.Fatalf("Reoptimize: %v", err)
	}

	sent := routing.lastOptimize.Itinerary
	first, last := sent[0], sent[len(sent)-1]
	if first.Type != "City" || !first.IsCity || last.Type != "City" || !last.IsCity {
		t.Fatalf("endpoints not forced to city anchors: %+v %+v", first, last)
	}
	if sent[1].Type == "City" || sent[1].IsCity {
		t.Fatalf("interior stop should not be anchored: %+v", sent[1])
	}
}

func TestReoptimizeBadStatusKeepsPriorPlan(t *testing.T) {
	routing := &fakeRouting{optResp: &OptimizeResponse{Status: "error"}}
	svc := NewPlanService(&fakeLocationRepo{}, routing, nil)

	prior := threeStopWirePlan()
	got, err := svc.Reoptimize(context.Background(), prior)
	if !errors.Is(err, utils.ErrUpstreamUnavailable) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if !reflect.DeepEqual(got, prior) {
		t.Fatalf("prior plan not preserved")
	}
}

func TestReoptimizeCountMismatchKeepsPriorPlan(t *testing.T) {
	routing := &fakeRouting{optResp: &OptimizeResponse{
		Status: "ok",
		Itinerary: []planner.RawRecord{
			{"name": "Colombo", "province": "Western"},
			{"name": "Matara", "province": "Southern"},
		},
	}}
	svc := NewPlanService(&fakeLocationRepo{}, routing, nil)

	prior := threeStopWirePlan()
	got, err := svc.Reoptimize(context.Background(), prior)
	if !errors.Is(err, utils.ErrUpstreamUnavailable) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if !reflect.DeepEqual(got, prior) {
		t.Fatalf("prior plan not preserved")
	}
}

func TestReoptimizeRederivesLocationIDs(t *testing.T) {
	routing := &fakeRouting{optResp: &OptimizeResponse{
		Status: "ok",
		Itinerary: []planner.RawRecord{
			{"name": "Colombo", "province": "Western", "lat": 6.9271, "lng": 79.8612},
			{"name": "Galle Fort", "province": "Southern", "lat": 6.02, "lng": 80.21},
			{"name": "Matara", "province": "Southern", "lat": 5.9485, "lng": 80.5353},
		},
	}}
	svc := NewPlanService(&fakeLocationRepo{}, routing, nil)

	got, err := svc.Reoptimize(context.Background(), threeStopWirePlan())
	if err != nil {
		t.Fatalf("Reoptimize: %v", err)
	}
	want := []string{"loc-1", "loc-2", "loc-3"}
	for i, s := range got.Itinerary {
		if s.LocationID != want[i] {
			t.Fatalf("stop %d location id = %q, want %q", i, s.LocationID, want[i])
		}
	}
	if got.Start == nil || got.Start.Name != "Colombo" || got.End == nil || got.End.Name != "Matara" {
		t.Fatalf("snapshots = %+v %+v", got.Start, got.End)
	}
}

func TestReoptimizeRebuildsDistancesWhenLegsMissing(t *testing.T) {
	upstreamTotal := 999.0
	routing := &fakeRouting{optResp: &OptimizeResponse{
		Status: "ok",
		Itinerary: []planner.RawRecord{
			{"name": "Colombo", "province": "Western", "lat": 6.9271, "lng": 79.8612},
			{"name": "Galle Fort", "province": "Southern", "lat": 6.02, "lng": 80.21},
			{"name": "Matara", "province": "Southern", "lat": 5.9485, "lng": 80.5353},
		},
		TotalDistanceKm: &upstreamTotal,
	}}
	svc := NewPlanService(&fakeLocationRepo{}, routing, nil)

	got, err := svc.Reoptimize(context.Background(), threeStopWirePlan())
	if err != nil {
		t.Fatalf("Reoptimize: %v", err)
	}
	if got.TotalDistanceKm == nil || *got.TotalDistanceKm == upstreamTotal {
		t.Fatalf("total should be rebuilt from coordinates, got %v", got.TotalDistanceKm)
	}
	if got.Itinerary[0].DistanceFromPrev != nil {
		t.Fatalf("first stop distance must be undefined")
	}
	if got.Itinerary[1].DistanceFromPrev == nil || got.Itinerary[2].DistanceFromPrev == nil {
		t.Fatalf("leg distances not rebuilt")
	}
}

func TestReoptimizeTrustsWellTypedUpstreamDistances(t *testing.T) {
	upstreamTotal := 123.4
	routing := &fakeRouting{optResp: &OptimizeResponse{
		Status: "ok",
		Itinerary: []planner.RawRecord{
			{"name": "Colombo", "province": "Western", "lat": 6.9271, "lng": 79.8612},
			{"name": "Galle Fort", "province": "Southern", "lat": 6.02, "lng": 80.21, "distance_from_prev": 80.0},
			{"name": "Matara", "province": "Southern", "lat": 5.9485, "lng": 80.5353, "distance_from_prev": 43.4},
		},
		TotalDistanceKm: &upstreamTotal,
	}}
	svc := NewPlanService(&fakeLocationRepo{}, routing, nil)

	got, err := svc.Reoptimize(context.Background(), threeStopWirePlan())
	if err != nil {
		t.Fatalf("Reoptimize: %v", err)
	}
	if got.TotalDistanceKm == nil || *got.TotalDistanceKm != upstreamTotal {
		t.Fatalf("upstream total should be kept, got %v", got.TotalDistanceKm)
	}
	if got.Itinerary[1].DistanceFromPrev == nil || *got.Itinerary[1].DistanceFromPrev != 80.0 {
		t.Fatalf("upstream leg distance should be kept, got %v", got.Itinerary[1].DistanceFromPrev)
	}
}

func TestReoptimizeRejectsShortItinerary(t *testing.T) {
	svc := NewPlanService(&fakeLocationRepo{}, &fakeRouting{}, nil)

	prior := response_models.Plan{Itinerary: []response_models.Stop{{Name: "Colombo"}}}
	got, err := svc.Reoptimize(context.Background(), prior)
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if !reflect.DeepEqual(got, prior) {
		t.Fatalf("prior plan not preserved")
	}
}

func TestReplaceStopMapsFixedEndpointError(t *testing.T) {
	svc := NewPlanService(&fakeLocationRepo{}, &fakeRouting{}, nil)

	prior := threeStopWirePlan()
	got, err := svc.ReplaceStop(prior, 0, response_models.Stop{Name: "Anywhere", Lat: planner.Float(1), Lng: planner.Float(1)})
	if !errors.Is(err, utils.ErrFixedStop) {
		t.Fatalf("expected fixed stop error, got %v", err)
	}
	if !reflect.DeepEqual(got, prior) {
		t.Fatalf("prior plan not preserved")
	}
}
