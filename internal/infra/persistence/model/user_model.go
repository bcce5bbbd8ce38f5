package model

import (
	"time"

	"gorm.io/gorm"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	DisplayName  string `gorm:"type:varchar(255);not null"`
	Language     string `gorm:"type:varchar(16);not null;default:'en'"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsSuperadmin bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
