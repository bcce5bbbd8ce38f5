package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// LastWriteResult holds the serialized outcome of the most recent tag-write
// command; it is replaced as a whole on every status transition.
type DeviceModel struct {
	ID              int64          `gorm:"primaryKey;autoIncrement"`
	Name            string         `gorm:"type:varchar(255);not null"`
	TokenHash       string         `gorm:"type:varchar(255)"`
	DeviceCode      *string        `gorm:"type:varchar(64);uniqueIndex"`
	IsActive        bool           `gorm:"not null;default:false"`
	Scopes          datatypes.JSON `gorm:"type:jsonb"`
	IPAddress       string         `gorm:"type:varchar(64)"`
	LastUsedAt      *time.Time
	LastSeenAt      *time.Time `gorm:"index"`
	LastWriteResult datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
