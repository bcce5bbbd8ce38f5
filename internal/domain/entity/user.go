// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User represents an account that owns sessions and API keys.
type User struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	DisplayName  string     `json:"display_name"`
	Language     string     `json:"language"`
	PasswordHash string     `json:"-"`
	IsSuperadmin bool       `json:"is_superadmin"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"-"`
}

// CanAuthenticate reports whether credentials belonging to this user may
// still resolve to a principal.
func (u *User) CanAuthenticate() bool {
	return u.IsActive && u.DeletedAt == nil
}
