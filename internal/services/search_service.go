package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type SearchServiceInterface interface {
	SearchSavedLocations(ctx context.Context, accountID uuid.UUID, query string, limit int) ([]response_models.SearchHit, error)
}

// SearchService answers free-text queries over a user's saved locations via
// embedding similarity.
type SearchService struct {
	embeddingRepo repositories.LocationEmbeddingRepository
}

func NewSearchService(embeddingRepo repositories.LocationEmbeddingRepository) SearchServiceInterface {
	return &SearchService{
		embeddingRepo: embeddingRepo,
	}
}

func (s *SearchService) SearchSavedLocations(ctx context.Context, accountID uuid.UUID, query string, limit int) ([]response_models.SearchHit, error) {
	if query == "" {
		return nil, utils.ErrInvalidInput
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	vector, err := utils.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("Query embedding failed: %v", err)
		return nil, utils.ErrUpstreamUnavailable
	}

	scored, err := s.embeddingRepo.SearchByVector(ctx, accountID.String(), vector, limit)
	if err != nil {
		log.Printf("Vector search failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	hits := make([]response_models.SearchHit, 0, len(scored))
	for _, row := range scored {
		hits = append(hits, response_models.SearchHit{
			LocationID: row.LocationID,
			Name:       row.Name,
			Province:   row.Province,
			Distance:   row.Distance,
		})
	}
	return hits, nil
}
