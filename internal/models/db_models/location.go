package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Collection names a saved location can belong to. The plan pool is the
// most authoritative source when building a catalog.
const (
	CollectionPlanPool            = "plan_pool"
	CollectionRecommended         = "recommended_locations"
	CollectionLastRecommendations = "last_recommendations"
)

type SavedLocation struct {
	BaseModel
	AccountID  uuid.UUID `gorm:"type:uuid;index"`
	Collection string    `gorm:"index"`

	Name        string
	City        string
	Province    string
	Latitude    *float64
	Longitude   *float64
	AvgRating   *float64
	RatingCount int
	Description string
	Activities  pq.StringArray `gorm:"type:text[]"`
	Category    string
}
