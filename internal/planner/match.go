package planner

import (
	"math"
	"sort"
	"strings"
)

// matchEpsilonKm guards the proximity comparison: distance only decides the
// order when the gap is larger than this, otherwise popularity breaks the
// tie. Keeps the sort stable for near-equal candidates.
const matchEpsilonKm = 1e-6

// MatchTarget describes the place a catalog entry should be found for.
type MatchTarget struct {
	City     string
	Province string
	Lat      *float64
	Lng      *float64
}

func (t MatchTarget) Point() Point { return Point{Lat: t.Lat, Lng: t.Lng} }

// PickMatch selects the best catalog entry for the target: candidates from
// the same city, falling back to the same province, ordered by proximity,
// then rating count, then average rating. Returns nil when nothing matches.
func PickMatch(catalog []PointOfInterest, target MatchTarget) *PointOfInterest {
	candidates := filterByPlace(catalog, target)
	if len(candidates) == 0 {
		return nil
	}

	tp := target.Point()
	sort.SliceStable(candidates, func(i, j int) bool {
		di := DistanceKm(candidates[i].Point(), tp)
		dj := DistanceKm(candidates[j].Point(), tp)
		// Abs(Inf-Inf) is NaN, so pairs without usable coordinates fall
		// through to the popularity tie-breaks.
		if math.Abs(di-dj) > matchEpsilonKm {
			return di < dj
		}
		if candidates[i].RatingCount != candidates[j].RatingCount {
			return candidates[i].RatingCount > candidates[j].RatingCount
		}
		return ratingOrZero(candidates[i]) > ratingOrZero(candidates[j])
	})

	best := candidates[0]
	return &best
}

func filterByPlace(catalog []PointOfInterest, target MatchTarget) []PointOfInterest {
	var byCity []PointOfInterest
	if target.City != "" {
		for _, e := range catalog {
			if strings.EqualFold(strings.TrimSpace(e.City), strings.TrimSpace(target.City)) {
				byCity = append(byCity, e)
			}
		}
	}
	if len(byCity) > 0 || target.Province == "" {
		return byCity
	}

	var byProvince []PointOfInterest
	for _, e := range catalog {
		if strings.EqualFold(strings.TrimSpace(e.Province), strings.TrimSpace(target.Province)) {
			byProvince = append(byProvince, e)
		}
	}
	return byProvince
}

func ratingOrZero(p PointOfInterest) float64 {
	if p.AvgRating == nil {
		return 0
	}
	return *p.AvgRating
}
