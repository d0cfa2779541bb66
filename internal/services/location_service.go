package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type LocationServiceInterface interface {
	AddLocation(ctx context.Context, accountID uuid.UUID, req request_models.AddLocationRequest) (string, error)
	RemoveLocation(ctx context.Context, accountID, locationID uuid.UUID) error
	ListCollection(ctx context.Context, accountID uuid.UUID, collection string) ([]response_models.Location, error)
	StoreRecommendations(ctx context.Context, accountID uuid.UUID, locations []request_models.AddLocationRequest) error
}

type LocationService struct {
	locationRepo  repositories.LocationRepository
	embeddingRepo repositories.LocationEmbeddingRepository
}

func NewLocationService(locationRepo repositories.LocationRepository, embeddingRepo repositories.LocationEmbeddingRepository) LocationServiceInterface {
	return &LocationService{
		locationRepo:  locationRepo,
		embeddingRepo: embeddingRepo,
	}
}

func validCollection(name string) bool {
	switch name {
	case db_models.CollectionPlanPool, db_models.CollectionRecommended, db_models.CollectionLastRecommendations:
		return true
	}
	return false
}

func (l *LocationService) AddLocation(ctx context.Context, accountID uuid.UUID, req request_models.AddLocationRequest) (string, error) {
	if !validCollection(req.Collection) {
		return "", utils.ErrInvalidInput
	}

	location := locationFromRequest(accountID, req)
	id, err := l.locationRepo.Insert(ctx, &location)
	if err != nil {
		log.Printf("Error inserting location: %v", err)
		return "", utils.ErrDatabaseError
	}

	// Embedding is best-effort: the location is usable without it.
	l.indexLocation(ctx, accountID, location)

	return id.String(), nil
}

func (l *LocationService) RemoveLocation(ctx context.Context, accountID, locationID uuid.UUID) error {
	err := l.locationRepo.Delete(ctx, accountID, locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrLocationNotFound
		}
		log.Printf("Error deleting location: %v", err)
		return utils.ErrDatabaseError
	}

	if err := l.embeddingRepo.DeleteByLocation(ctx, locationID.String()); err != nil {
		log.Printf("Error deleting location embedding: %v", err)
	}
	return nil
}

func (l *LocationService) ListCollection(ctx context.Context, accountID uuid.UUID, collection string) ([]response_models.Location, error) {
	if !validCollection(collection) {
		return nil, utils.ErrInvalidInput
	}

	locations, err := l.locationRepo.ListByCollection(ctx, accountID, collection)
	if err != nil {
		log.Printf("Error listing locations: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Location, 0, len(locations))
	for _, loc := range locations {
		out = append(out, response_models.Location{
			ID:          loc.ID.String(),
			Collection:  loc.Collection,
			Name:        loc.Name,
			City:        loc.City,
			Province:    loc.Province,
			Latitude:    loc.Latitude,
			Longitude:   loc.Longitude,
			AvgRating:   loc.AvgRating,
			RatingCount: loc.RatingCount,
			Description: loc.Description,
			Activities:  loc.Activities,
			Category:    loc.Category,
		})
	}
	return out, nil
}

// StoreRecommendations replaces the last_recommendations collection with
// the latest recommender results in one transaction.
func (l *LocationService) StoreRecommendations(ctx context.Context, accountID uuid.UUID, requests []request_models.AddLocationRequest) error {
	locations := make([]db_models.SavedLocation, 0, len(requests))
	for _, req := range requests {
		if strings.TrimSpace(req.Name) == "" {
			continue
		}
		locations = append(locations, locationFromRequest(accountID, req))
	}

	err := l.locationRepo.ReplaceCollection(ctx, accountID, db_models.CollectionLastRecommendations, locations)
	if err != nil {
		log.Printf("Error replacing recommendations: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (l *LocationService) indexLocation(ctx context.Context, accountID uuid.UUID, location db_models.SavedLocation) {
	text := location.Name
	if location.Description != "" {
		text += ". " + location.Description
	}

	vector, err := utils.GetEmbedding(ctx, text)
	if err != nil {
		log.Printf("Embedding failed for %s: %v", location.Name, err)
		return
	}

	err = l.embeddingRepo.Upsert(ctx, db_models.LocationEmbedding{
		LocationID:  location.ID.String(),
		AccountID:   accountID.String(),
		Name:        location.Name,
		Description: location.Description,
		Province:    location.Province,
		Tags:        location.Activities,
		Embedding:   vector,
	})
	if err != nil {
		log.Printf("Embedding upsert failed for %s: %v", location.Name, err)
	}
}

func locationFromRequest(accountID uuid.UUID, req request_models.AddLocationRequest) db_models.SavedLocation {
	lat, lng := req.Latitude, req.Longitude
	if lat == nil || lng == nil {
		lat, lng = nil, nil
	}
	return db_models.SavedLocation{
		AccountID:   accountID,
		Collection:  req.Collection,
		Name:        req.Name,
		City:        req.City,
		Province:    req.Province,
		Latitude:    lat,
		Longitude:   lng,
		AvgRating:   req.AvgRating,
		RatingCount: req.RatingCount,
		Description: req.Description,
		Activities:  req.Activities,
		Category:    req.Category,
	}
}
