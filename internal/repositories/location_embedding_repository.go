package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

// ScoredLocation is an embedding row plus its cosine distance to the query
// vector. Smaller is closer.
type ScoredLocation struct {
	db_models.LocationEmbedding
	Distance float64
}

type LocationEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding db_models.LocationEmbedding) error
	SearchByVector(ctx context.Context, accountID string, vector pgvector.Vector, limit int) ([]ScoredLocation, error)
	DeleteByLocation(ctx context.Context, locationID string) error
}

type locationEmbeddingRepository struct {
	db *gorm.DB
}

func NewLocationEmbeddingRepository(db *gorm.DB) LocationEmbeddingRepository {
	return &locationEmbeddingRepository{db: db}
}

func (r *locationEmbeddingRepository) Upsert(ctx context.Context, embedding db_models.LocationEmbedding) error {
	return r.db.WithContext(ctx).Save(&embedding).Error
}

func (r *locationEmbeddingRepository) SearchByVector(ctx context.Context, accountID string, vector pgvector.Vector, limit int) ([]ScoredLocation, error) {
	var results []ScoredLocation

	query := `
        SELECT *, (embedding <=> $2) AS distance
        FROM location_embeddings
        WHERE account_id = $1
        ORDER BY embedding <=> $2
        LIMIT $3
    `

	err := r.db.WithContext(ctx).Raw(query, accountID, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *locationEmbeddingRepository) DeleteByLocation(ctx context.Context, locationID string) error {
	return r.db.WithContext(ctx).
		Delete(&db_models.LocationEmbedding{}, "location_id = ?", locationID).Error
}
