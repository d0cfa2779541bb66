package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"time"
)

type LocationEmbedding struct {
	LocationID  string `gorm:"primaryKey;column:location_id"`
	AccountID   string `gorm:"index"`
	Name        string
	Description string
	Province    string
	Tags        pq.StringArray  `gorm:"type:text[]"`
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}
