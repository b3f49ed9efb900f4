package models

import "time"

type UserRole string

const (
	RolePlayer UserRole = "player"
	RoleCoach  UserRole = "coach"
	RoleAdmin  UserRole = "admin"
	RoleGuest  UserRole = "guest"
)

// Valid reports whether the role is one of the known values.
// Matching is case-sensitive: "Player" and "ADMIN" are rejected.
func (r UserRole) Valid() bool {
	switch r {
	case RolePlayer, RoleCoach, RoleAdmin, RoleGuest:
		return true
	}
	return false
}

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
