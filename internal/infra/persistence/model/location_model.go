package model

import "time"

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	Name       string  `gorm:"type:varchar(255);not null"`
	Identifier *string `gorm:"type:varchar(64);index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
