package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLocationNotFound   = errors.New("location not found")
	ErrItineraryNotFound  = errors.New("itinerary not found")

	// Plan edit failures. A fixed stop is the first or last leg of an
	// itinerary, which replacement operations may never swap out.
	ErrFixedStop          = errors.New("stop is fixed and cannot be replaced")
	ErrMissingCoordinates = errors.New("replacement stop has no coordinates")

	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
