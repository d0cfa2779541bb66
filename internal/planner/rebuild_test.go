package planner

import (
	"math"
	"reflect"
	"testing"
)

func TestRebuildDistancesFirstStopUndefined(t *testing.T) {
	stops := []ItineraryStop{
		{Name: "Colombo", Lat: Float(6.9271), Lng: Float(79.8612), DistanceFromPrev: Float(99)},
		{Name: "Galle", Lat: Float(6.0535), Lng: Float(80.2210)},
		{Name: "Matara", Lat: Float(5.9485), Lng: Float(80.5353)},
	}

	out, total := RebuildDistances(stops)
	if out[0].DistanceFromPrev != nil {
		t.Fatalf("first stop distance must be undefined")
	}
	if out[1].DistanceFromPrev == nil || out[2].DistanceFromPrev == nil {
		t.Fatalf("legs with coordinates must get distances")
	}
	if total == nil {
		t.Fatalf("total missing")
	}
	sum := *out[1].DistanceFromPrev + *out[2].DistanceFromPrev
	if math.Abs(*total-sum) > 1e-9 {
		t.Fatalf("total %f != leg sum %f", *total, sum)
	}
}

func TestRebuildDistancesSkipsLegsWithoutCoords(t *testing.T) {
	stops := []ItineraryStop{
		{Name: "Colombo", Lat: Float(6.9271), Lng: Float(79.8612)},
		{Name: "Nowhere"},
		{Name: "Galle", Lat: Float(6.0535), Lng: Float(80.2210)},
	}

	out, total := RebuildDistances(stops)
	if out[1].DistanceFromPrev != nil || out[2].DistanceFromPrev != nil {
		t.Fatalf("legs touching a coordinate-less stop must stay undefined")
	}
	if total == nil || *total != 0 {
		t.Fatalf("total should be 0 with no defined legs, got %v", total)
	}
}

func TestRebuildDistancesEmpty(t *testing.T) {
	out, total := RebuildDistances(nil)
	if len(out) != 0 || total != nil {
		t.Fatalf("empty itinerary should stay empty with nil total")
	}
}

func TestRebuildDistancesDoesNotMutateInput(t *testing.T) {
	stops := []ItineraryStop{
		{Name: "Colombo", Lat: Float(6.9271), Lng: Float(79.8612)},
		{Name: "Galle", Lat: Float(6.0535), Lng: Float(80.2210)},
	}
	RebuildDistances(stops)
	if stops[1].DistanceFromPrev != nil {
		t.Fatalf("input slice was mutated")
	}
}

func TestBuildCorridorSkipsUnknownAndDuplicates(t *testing.T) {
	stops := []ItineraryStop{
		{Name: "A", Province: "Western"},
		{Name: "B", Province: "unknown"},
		{Name: "C", Province: "Western"},
		{Name: "D", Province: "Southern"},
	}

	corridor := BuildCorridor(stops)
	want := []string{"Western", "Southern"}
	if !reflect.DeepEqual(corridor, want) {
		t.Fatalf("corridor = %v, want %v", corridor, want)
	}
}

func TestBuildCorridorTrimsAndSkipsEmpty(t *testing.T) {
	stops := []ItineraryStop{
		{Name: "A", Province: "  Central "},
		{Name: "B", Province: ""},
		{Name: "C", Province: "Unknown Region"},
	}

	corridor := BuildCorridor(stops)
	if !reflect.DeepEqual(corridor, []string{"Central"}) {
		t.Fatalf("corridor = %v", corridor)
	}
}
