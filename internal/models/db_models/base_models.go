package db_models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel holds the bookkeeping columns shared by stored rows. Ids and
// timestamps are filled by the database and gorm, so readers never set them.
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt int64          `gorm:"autoCreateTime"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
