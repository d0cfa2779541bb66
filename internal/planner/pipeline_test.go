package planner

import (
	"reflect"
	"testing"
)

// Full pipeline over a realistic upstream itinerary: city anchors resolved
// against the catalog, corridor and distances derived.
func TestPipelineEndToEnd(t *testing.T) {
	catalog := BuildCatalog([]RawRecord{
		{"name": "Galle Fort", "city": "Galle", "rating_count": float64(50), "lat": 6.02, "lng": 80.21},
		{"name": "Galle Fort B", "city": "Galle", "rating_count": float64(10), "lat": 6.03, "lng": 80.22},
	}, nil, nil)

	raw := []ItineraryStop{
		{Name: "Colombo", Type: "City", Province: "Western", Lat: Float(6.9271), Lng: Float(79.8612)},
		{Name: "Galle", Type: "City", City: "Galle"},
		{Name: "Matara", Type: "City", Province: "Southern", Lat: Float(5.9485), Lng: Float(80.5353)},
	}

	plan := AssemblePlan(raw, catalog, nil, nil)

	if len(plan.Itinerary) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(plan.Itinerary))
	}
	if plan.Itinerary[1].Name != "Galle Fort" {
		t.Fatalf("anchor should resolve to the more reviewed POI, got %q", plan.Itinerary[1].Name)
	}
	if plan.Itinerary[1].OriginalCityLabel != "Galle" {
		t.Fatalf("provenance label = %q", plan.Itinerary[1].OriginalCityLabel)
	}

	if !reflect.DeepEqual(plan.ProvinceCorridor, []string{"Western", "Southern"}) {
		t.Fatalf("corridor = %v", plan.ProvinceCorridor)
	}

	if plan.Itinerary[0].DistanceFromPrev != nil {
		t.Fatalf("first stop distance must be undefined")
	}
	for i := 1; i < 3; i++ {
		if plan.Itinerary[i].DistanceFromPrev == nil {
			t.Fatalf("stop %d distance missing", i)
		}
	}
	if plan.TotalDistanceKm == nil || *plan.TotalDistanceKm <= 0 {
		t.Fatalf("total distance = %v", plan.TotalDistanceKm)
	}

	if plan.Start == nil || plan.Start.Name != "Colombo" {
		t.Fatalf("start snapshot = %+v", plan.Start)
	}
	if plan.End == nil || plan.End.Name != "Matara" {
		t.Fatalf("end snapshot = %+v", plan.End)
	}
}

// Anchors that resolve to the same POI collapse when adjacent.
func TestPipelineDedupesResolvedNeighbours(t *testing.T) {
	catalog := BuildCatalog([]RawRecord{
		{"name": "Galle Fort", "city": "Galle", "rating_count": float64(50), "lat": 6.02, "lng": 80.21},
	}, nil, nil)

	raw := []ItineraryStop{
		{Name: "Colombo", Type: "City", Province: "Western", Lat: Float(6.9271), Lng: Float(79.8612)},
		{Name: "Galle", Type: "City", City: "Galle"},
		{Name: "Galle", Type: "City", City: "Galle"},
		{Name: "Matara", Type: "City", Province: "Southern", Lat: Float(5.9485), Lng: Float(80.5353)},
	}

	plan := AssemblePlan(raw, catalog, nil, nil)
	if len(plan.Itinerary) != 3 {
		t.Fatalf("adjacent resolved duplicates should collapse, got %d stops", len(plan.Itinerary))
	}
}
