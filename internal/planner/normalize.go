package planner

// StopFromRecord resolves an upstream raw stop into a typed itinerary stop
// using the same alias tables as the catalog side.
func StopFromRecord(r RawRecord) ItineraryStop {
	lat, lng := coordsFromRecord(r)
	return ItineraryStop{
		Name:              firstString(r, nameAliases),
		Lat:               lat,
		Lng:               lng,
		Type:              firstString(r, typeAliases),
		IsCity:            firstBool(r, isCityAliases),
		City:              firstString(r, cityAliases),
		Province:          firstString(r, provinceAliases),
		Rating:            firstFloat(r, ratingAliases),
		RatingCount:       firstInt(r, ratingCountAliases),
		Description:       firstString(r, descriptionAliases),
		Activities:        firstStrings(r, activitiesAliases),
		LocationID:        firstString(r, idAliases),
		DistanceFromPrev:  firstFloat(r, distanceAliases),
		OriginalCityLabel: firstString(r, origLabelAliases),
	}
}

// StopsFromRecords converts an upstream itinerary in order.
func StopsFromRecords(records []RawRecord) []ItineraryStop {
	stops := make([]ItineraryStop, 0, len(records))
	for _, r := range records {
		stops = append(stops, StopFromRecord(r))
	}
	return stops
}

// Normalize walks a raw itinerary and replaces city anchors (and province-
// less stops) with the best-matching catalog entry. Stops that are already
// concrete pass through with only their province canonicalized. Length and
// order are preserved.
func Normalize(raw []ItineraryStop, catalog []PointOfInterest) []ItineraryStop {
	out := make([]ItineraryStop, 0, len(raw))

	for _, stop := range raw {
		anchor := stop.isCityAnchor()
		province := canonicalProvince(stop.Province)

		if !anchor && province != "" {
			kept := stop
			kept.Province = province
			out = append(out, kept)
			continue
		}

		target := MatchTarget{
			City:     firstNonEmpty(stop.City, stop.Name),
			Province: province,
			Lat:      stop.Lat,
			Lng:      stop.Lng,
		}
		match := PickMatch(catalog, target)
		if match == nil {
			kept := stop
			kept.Province = province
			out = append(out, kept)
			continue
		}

		out = append(out, resolveStop(stop, *match, anchor, province))
	}
	return out
}

// resolveStop builds the concrete stop produced by matching an anchor (or a
// province-less stop) against the catalog. Matched fields win; the original
// stop backfills coordinates, rating and province when the match lacks them.
func resolveStop(original ItineraryStop, match PointOfInterest, wasAnchor bool, originalProvince string) ItineraryStop {
	resolved := ItineraryStop{
		Name:        match.Name,
		Type:        match.Type,
		City:        match.City,
		Province:    firstNonEmpty(canonicalProvince(match.Province), originalProvince),
		Lat:         match.Lat,
		Lng:         match.Lng,
		Rating:      match.AvgRating,
		RatingCount: match.RatingCount,
		Description: match.Description,
		Activities:  match.Activities,
		LocationID:  match.LocationID,
	}
	if resolved.Lat == nil || resolved.Lng == nil {
		resolved.Lat = original.Lat
		resolved.Lng = original.Lng
	}
	if resolved.Rating == nil {
		resolved.Rating = original.Rating
	}
	if wasAnchor {
		resolved.OriginalCityLabel = firstNonEmpty(original.City, original.Name)
	}
	return resolved
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
