package planner

import (
	"regexp"
	"strings"
)

// PointOfInterest is one entry of a user's location catalog, assembled from
// their saved and recommended locations.
type PointOfInterest struct {
	LocationID  string
	Name        string
	City        string
	Province    string
	Lat         *float64
	Lng         *float64
	AvgRating   *float64
	RatingCount int
	Description string
	Activities  []string
	Type        string
}

func (p PointOfInterest) Point() Point { return Point{Lat: p.Lat, Lng: p.Lng} }

// RawRecord is a location-like record as it arrives from upstream services
// or stored collections. Field names vary per producer, so attributes are
// resolved through alias tables rather than a fixed schema.
type RawRecord map[string]any

var (
	idAliases          = []string{"location_id", "locationId", "id", "_id"}
	nameAliases        = []string{"name", "Location_Name", "location_name"}
	cityAliases        = []string{"city", "located_city", "locatedCity"}
	provinceAliases    = []string{"province", "located_province"}
	latAliases         = []string{"lat", "latitude"}
	lngAliases         = []string{"lng", "lon", "longitude"}
	ratingAliases      = []string{"avg_rating", "avgRating", "rating"}
	ratingCountAliases = []string{"rating_count", "ratingCount", "reviews"}
	descriptionAliases = []string{"description", "about"}
	activitiesAliases  = []string{"activities", "things_to_do"}
	typeAliases        = []string{"type", "category"}
	isCityAliases      = []string{"is_city", "isCity"}
	distanceAliases    = []string{"distance_from_prev", "distance_from_previous_km", "distanceFromPrev"}
	origLabelAliases   = []string{"original_city_label", "originalCityLabel"}
)

var unknownProvinceRe = regexp.MustCompile(`(?i)^unknown`)

// canonicalProvince trims free-text province names and collapses the
// "unknown" sentinel to the empty string, so downstream stages never match
// on it.
func canonicalProvince(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || unknownProvinceRe.MatchString(s) {
		return ""
	}
	return s
}

func firstString(r RawRecord, keys []string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return ""
}

func firstFloat(r RawRecord, keys []string) *float64 {
	for _, k := range keys {
		v, ok := r[k]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case float64:
			return Float(n)
		case int:
			return Float(float64(n))
		}
	}
	return nil
}

func firstInt(r RawRecord, keys []string) int {
	if f := firstFloat(r, keys); f != nil {
		return int(*f)
	}
	return 0
}

func firstBool(r RawRecord, keys []string) bool {
	for _, k := range keys {
		if v, ok := r[k]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return false
}

func firstStrings(r RawRecord, keys []string) []string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok {
			continue
		}
		switch list := v.(type) {
		case []string:
			return list
		case []any:
			out := make([]string, 0, len(list))
			for _, item := range list {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

// coordsFromRecord keeps the both-or-neither invariant: a record with only
// one axis yields no coordinates at all.
func coordsFromRecord(r RawRecord) (*float64, *float64) {
	lat := firstFloat(r, latAliases)
	lng := firstFloat(r, lngAliases)
	if lat == nil || lng == nil {
		return nil, nil
	}
	return lat, lng
}

// POIFromRecord resolves a raw record into a typed catalog entry. Missing
// attributes stay zero-valued.
func POIFromRecord(r RawRecord) PointOfInterest {
	lat, lng := coordsFromRecord(r)
	return PointOfInterest{
		LocationID:  firstString(r, idAliases),
		Name:        firstString(r, nameAliases),
		City:        firstString(r, cityAliases),
		Province:    firstString(r, provinceAliases),
		Lat:         lat,
		Lng:         lng,
		AvgRating:   firstFloat(r, ratingAliases),
		RatingCount: firstInt(r, ratingCountAliases),
		Description: firstString(r, descriptionAliases),
		Activities:  firstStrings(r, activitiesAliases),
		Type:        firstString(r, typeAliases),
	}
}

func catalogKey(name, city string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(strings.TrimSpace(city))
}

// DedupeCatalog collapses entries sharing a (name, city) key, keeping the
// one with the higher rating count. Ties keep the earlier entry, so callers
// should list their most authoritative source first. Insertion order is
// preserved.
func DedupeCatalog(entries []PointOfInterest) []PointOfInterest {
	out := make([]PointOfInterest, 0, len(entries))
	index := make(map[string]int, len(entries))

	for _, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			continue
		}
		key := catalogKey(e.Name, e.City)
		at, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, e)
			continue
		}
		if e.RatingCount > out[at].RatingCount {
			out[at] = e
		}
	}
	return out
}

// BuildCatalog merges a user's plan pool, recommended locations and last
// recommendation results into one deduplicated catalog. The plan pool comes
// first and wins rating-count ties.
func BuildCatalog(pool, recommended, lastResults []RawRecord) []PointOfInterest {
	entries := make([]PointOfInterest, 0, len(pool)+len(recommended)+len(lastResults))
	for _, group := range [][]RawRecord{pool, recommended, lastResults} {
		for _, r := range group {
			entries = append(entries, POIFromRecord(r))
		}
	}
	return DedupeCatalog(entries)
}
