package db_models

import "github.com/google/uuid"

// SavedItinerary stores a generated plan as the client saw it, keyed by a
// user-chosen title.
type SavedItinerary struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;index"`
	Title     string
	PlanJSON  string `gorm:"type:jsonb"`
}
