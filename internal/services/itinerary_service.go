package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type ItineraryServiceInterface interface {
	SaveItinerary(ctx context.Context, accountID uuid.UUID, req request_models.SaveItineraryRequest) (string, error)
	ListItineraries(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.SavedItinerary, error)
	GetItineraryByTitle(ctx context.Context, accountID uuid.UUID, title string) (*response_models.SavedItinerary, error)
	DeleteItinerary(ctx context.Context, accountID, itineraryID uuid.UUID) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
	}
}

func (i *ItineraryService) SaveItinerary(ctx context.Context, accountID uuid.UUID, req request_models.SaveItineraryRequest) (string, error) {
	planJSON, err := json.Marshal(req.Plan)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	id, err := i.itineraryRepo.Insert(ctx, &db_models.SavedItinerary{
		AccountID: accountID,
		Title:     req.Title,
		PlanJSON:  string(planJSON),
	})
	if err != nil {
		log.Printf("Error saving itinerary: %v", err)
		return "", utils.ErrDatabaseError
	}
	return id.String(), nil
}

func (i *ItineraryService) ListItineraries(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]response_models.SavedItinerary, error) {
	itineraries, err := i.itineraryRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		log.Printf("Error listing itineraries: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SavedItinerary, 0, len(itineraries))
	for _, it := range itineraries {
		out = append(out, response_models.SavedItinerary{
			ID:    it.ID.String(),
			Title: it.Title,
		})
	}
	return out, nil
}

func (i *ItineraryService) GetItineraryByTitle(ctx context.Context, accountID uuid.UUID, title string) (*response_models.SavedItinerary, error) {
	itinerary, err := i.itineraryRepo.FindByTitle(ctx, accountID, title)
	if err != nil {
		log.Printf("Error fetching itinerary: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	var plan response_models.Plan
	if err := json.Unmarshal([]byte(itinerary.PlanJSON), &plan); err != nil {
		log.Printf("Corrupt plan payload for itinerary %s: %v", itinerary.ID, err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.SavedItinerary{
		ID:    itinerary.ID.String(),
		Title: itinerary.Title,
		Plan:  &plan,
	}, nil
}

func (i *ItineraryService) DeleteItinerary(ctx context.Context, accountID, itineraryID uuid.UUID) error {
	err := i.itineraryRepo.Delete(ctx, accountID, itineraryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrItineraryNotFound
		}
		log.Printf("Error deleting itinerary: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
