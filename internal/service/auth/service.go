// Package auth implements registration and password login.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aditya-zanzad/quizapp-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds auth service settings.
type Config struct {
	PasswordHashCost int
}

// Service implements the auth business logic.
type Service struct {
	users userRepo
	jwt   jwtManager
	cfg   Config
	log   *slog.Logger
}

// NewService creates a new auth service.
func NewService(log *slog.Logger, users userRepo, jwt jwtManager, cfg Config) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
		cfg:   cfg,
		log:   log.With("service", "auth"),
	}
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	User        domain.User
}

// ValidateToken verifies an access token and returns the user id and role.
// Used by the HTTP auth middleware.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return userID, role, nil
}
