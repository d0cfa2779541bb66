package planner

import (
	"math"
	"reflect"
	"testing"
)

func fiveStopPlan() Plan {
	stops := []ItineraryStop{
		{Name: "Colombo", Province: "Western", Lat: Float(6.9271), Lng: Float(79.8612)},
		{Name: "Bentota", Province: "Southern", Lat: Float(6.4189), Lng: Float(79.9970)},
		{Name: "Galle Fort", Province: "Southern", Lat: Float(6.0267), Lng: Float(80.2170)},
		{Name: "Mirissa", Province: "Southern", Lat: Float(5.9483), Lng: Float(80.4716)},
		{Name: "Matara", Province: "Southern", Lat: Float(5.9485), Lng: Float(80.5353)},
	}
	stops, total := RebuildDistances(stops)
	return Plan{
		Itinerary:        stops,
		TotalDistanceKm:  total,
		ProvinceCorridor: BuildCorridor(stops),
		Start:            snapshotOf(stops[0]),
		End:              snapshotOf(stops[4]),
	}
}

func TestReplaceStopRejectsEndpoints(t *testing.T) {
	plan := fiveStopPlan()
	candidate := ItineraryStop{Name: "Kandy", Lat: Float(7.29), Lng: Float(80.63)}

	for _, index := range []int{0, len(plan.Itinerary) - 1, -1, len(plan.Itinerary)} {
		got, err := ReplaceStop(plan, index, candidate)
		if err == nil {
			t.Fatalf("index %d must be rejected", index)
		}
		if !reflect.DeepEqual(got.Itinerary, plan.Itinerary) {
			t.Fatalf("plan mutated on rejected replace at %d", index)
		}
	}
}

func TestReplaceStopRejectsMissingCoordinates(t *testing.T) {
	plan := fiveStopPlan()

	_, err := ReplaceStop(plan, 2, ItineraryStop{Name: "Somewhere"})
	if err == nil {
		t.Fatalf("candidate without coordinates must be rejected")
	}
}

func TestReplaceStopRebuildsDistances(t *testing.T) {
	plan := fiveStopPlan()
	candidate := ItineraryStop{Name: "Hikkaduwa", City: "Hikkaduwa", Lat: Float(6.1407), Lng: Float(80.1012)}

	out, err := ReplaceStop(plan, 2, candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Itinerary[2].Name != "Hikkaduwa" {
		t.Fatalf("stop not replaced: %+v", out.Itinerary[2])
	}
	// Untouched prior fields survive the splice.
	if out.Itinerary[2].Province != "Southern" {
		t.Fatalf("prior province should be kept: %q", out.Itinerary[2].Province)
	}

	if out.Itinerary[0].DistanceFromPrev != nil {
		t.Fatalf("first distance must stay undefined")
	}
	sum := 0.0
	for _, s := range out.Itinerary[1:] {
		if s.DistanceFromPrev == nil {
			t.Fatalf("leg distance missing after rebuild")
		}
		sum += *s.DistanceFromPrev
	}
	if math.Abs(*out.TotalDistanceKm-sum) > 1e-9 {
		t.Fatalf("total %f != leg sum %f", *out.TotalDistanceKm, sum)
	}
	if *out.TotalDistanceKm == *plan.TotalDistanceKm {
		t.Fatalf("total should change after moving an interior stop")
	}

	// The original plan is untouched.
	if plan.Itinerary[2].Name != "Galle Fort" {
		t.Fatalf("input plan mutated")
	}
}

func TestReplaceStopKeepsCorridorAsGenerated(t *testing.T) {
	plan := fiveStopPlan()
	// Kandy is in the Central province, yet the corridor stays as generated.
	candidate := ItineraryStop{Name: "Kandy", City: "Kandy", Province: "Central", Lat: Float(7.2906), Lng: Float(80.6337)}

	out, err := ReplaceStop(plan, 2, candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Itinerary[2].Province != "Central" {
		t.Fatalf("stop province should update: %q", out.Itinerary[2].Province)
	}
	if !reflect.DeepEqual(out.ProvinceCorridor, plan.ProvinceCorridor) {
		t.Fatalf("corridor must not be recomputed on replace: %v", out.ProvinceCorridor)
	}
}

func TestAssemblePlanEmptyItinerary(t *testing.T) {
	start := &StopSnapshot{Name: "Colombo", Province: "Western"}
	end := &StopSnapshot{Name: "Matara", Province: "Southern"}

	plan := AssemblePlan(nil, nil, start, end)
	if len(plan.Itinerary) != 0 {
		t.Fatalf("expected empty itinerary")
	}
	if plan.TotalDistanceKm != nil {
		t.Fatalf("total must be undefined for an empty itinerary")
	}
	if len(plan.ProvinceCorridor) != 0 {
		t.Fatalf("corridor must be empty")
	}
	if plan.Start != start || plan.End != end {
		t.Fatalf("upstream snapshots must pass through")
	}
}
