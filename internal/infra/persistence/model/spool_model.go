package model

import (
	"time"

	"gorm.io/gorm"
)

// SpoolModel is the GORM-specific struct for the 'spools' table.
// TagID is intentionally not unique at the schema level: archived spools may
// keep a historical tag, so cross-entity uniqueness is enforced procedurally
// at reconciliation time.
type SpoolModel struct {
	ID                   int64   `gorm:"primaryKey;autoIncrement"`
	FilamentName         string  `gorm:"type:varchar(255)"`
	TagID                *string `gorm:"type:varchar(64);index"`
	RemainingWeightGrams *float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SpoolModel) TableName() string {
	return "spools"
}
