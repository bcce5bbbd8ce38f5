package model

import "time"

// SessionModel is the GORM-specific struct for the 'user_sessions' table.
// Revocation is an explicit timestamp rather than row deletion so a stolen
// cookie can never resurrect a session.
type SessionModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	UserID     int64  `gorm:"not null;index"`
	SecretHash string `gorm:"type:varchar(255);not null"`
	ExpiresAt  time.Time
	RevokedAt  *time.Time
	LastUsedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "user_sessions"
}
