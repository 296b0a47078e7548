// Package auth implements citizen self-registration, password login and
// access-token validation.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/civicdesk-backend/internal/config"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type jwtManager interface {
	GenerateAccessToken(actor domain.Actor) (string, error)
	ValidateAccessToken(token string) (domain.Actor, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, jwt jwtManager, cfg config.AuthConfig) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}

// ValidateToken validates an access token and returns the actor it carries.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (domain.Actor, error) {
	actor, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	return actor, nil
}

func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, err := s.jwt.GenerateAccessToken(domain.Actor{UserID: user.ID, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{AccessToken: token, User: user}, nil
}
