package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripmate/internal/models/db_models"
)

type LocationRepository interface {
	Insert(ctx context.Context, location *db_models.SavedLocation) (uuid.UUID, error)
	Delete(ctx context.Context, accountID, locationID uuid.UUID) error
	ListByCollection(ctx context.Context, accountID uuid.UUID, collection string) ([]db_models.SavedLocation, error)

	// ReplaceCollection swaps the whole collection in one transaction, used
	// when a fresh recommendation result lands.
	ReplaceCollection(ctx context.Context, accountID uuid.UUID, collection string, locations []db_models.SavedLocation) error
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Insert(ctx context.Context, location *db_models.SavedLocation) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(location).Error; err != nil {
		return uuid.Nil, err
	}
	return location.ID, nil
}

func (r *locationRepository) Delete(ctx context.Context, accountID, locationID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&db_models.SavedLocation{}, "id = ?", locationID)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *locationRepository) ListByCollection(ctx context.Context, accountID uuid.UUID, collection string) ([]db_models.SavedLocation, error) {
	var locations []db_models.SavedLocation
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND collection = ?", accountID, collection).
		Order("created_at asc").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) ReplaceCollection(ctx context.Context, accountID uuid.UUID, collection string, locations []db_models.SavedLocation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("account_id = ? AND collection = ?", accountID, collection).
			Delete(&db_models.SavedLocation{}).Error; err != nil {
			return err
		}
		if len(locations) == 0 {
			return nil
		}
		for i := range locations {
			locations[i].AccountID = accountID
			locations[i].Collection = collection
		}
		return tx.Create(&locations).Error
	})
}
