package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role controls what a user is allowed to do. Quiz creation requires
// RoleAdmin or RolePremium.
type Role string

const (
	RoleUser    Role = "user"
	RolePremium Role = "premium"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RolePremium, RoleAdmin:
		return true
	}
	return false
}

// CanCreateQuizzes reports whether the role may create and edit quizzes.
func (r Role) CanCreateQuizzes() bool {
	return r == RoleAdmin || r == RolePremium
}

func (r Role) String() string { return string(r) }

// User is an account that takes quizzes and reviews questions.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
