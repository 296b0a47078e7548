// Package user implements profile lookup and operator-side provisioning of
// staff, supervisor and admin accounts.
package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type staffProfileRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.StaffProfile, error)
	Upsert(ctx context.Context, p *domain.StaffProfile) (*domain.StaffProfile, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user profile operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	profiles staffProfileRepo
	tx       txManager
	hashCost int
}

// NewService creates a new user service instance. hashCost is the bcrypt
// cost used for provisioned accounts.
func NewService(
	logger *slog.Logger,
	users userRepo,
	profiles staffProfileRepo,
	tx txManager,
	hashCost int,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		profiles: profiles,
		tx:       tx,
		hashCost: hashCost,
	}
}

// Profile is a user together with the staff profile, when one exists.
type Profile struct {
	User         *domain.User
	StaffProfile *domain.StaffProfile
}
