package model

import (
	"time"

	"gorm.io/datatypes"
)

// APIKeyModel is the GORM-specific struct for the 'user_api_keys' table.
type APIKeyModel struct {
	ID         int64          `gorm:"primaryKey;autoIncrement"`
	UserID     int64          `gorm:"not null;index"`
	Name       string         `gorm:"type:varchar(255);not null"`
	SecretHash string         `gorm:"type:varchar(255);not null"`
	Scopes     datatypes.JSON `gorm:"type:jsonb"`
	LastUsedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (APIKeyModel) TableName() string {
	return "user_api_keys"
}
