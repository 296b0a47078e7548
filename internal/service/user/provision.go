package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// Provision creates a staff, supervisor or admin account, plus a staff
// profile for staff and supervisors. It performs no actor check: callers are
// the operator CLI and the admin-only HTTP route.
func (s *Service) Provision(ctx context.Context, input ProvisionInput) (*Profile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("user.Provision hash password: %w", err)
	}

	now := time.Now().UTC()
	email := trimOrNil(input.Email)
	if email != nil {
		lower := strings.ToLower(*email)
		email = &lower
	}

	var result Profile
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if reportsTo := trimOrNil(input.ReportsTo); reportsTo != nil {
			if err := s.requireSupervisor(txCtx, *reportsTo); err != nil {
				return err
			}
		}

		user, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.NewString(),
			Role:         input.Role,
			Name:         strings.TrimSpace(input.Name),
			Phone:        trimOrNil(input.Phone),
			Email:        email,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		result.User = user

		if !input.Role.IsStaffMember() {
			return nil
		}

		sp, err := s.profiles.Upsert(txCtx, &domain.StaffProfile{
			UserID:     user.ID,
			Department: trimOrNil(input.Department),
			Ward:       trimOrNil(input.Ward),
			ReportsTo:  trimOrNil(input.ReportsTo),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return fmt.Errorf("create staff profile: %w", err)
		}
		result.StaffProfile = sp
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.Provision: %w", err)
	}

	s.log.InfoContext(ctx, "account provisioned",
		slog.String("user_id", result.User.ID),
		slog.String("role", result.User.Role.String()))

	return &result, nil
}

func (s *Service) requireSupervisor(ctx context.Context, id string) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("reportsTo", "unknown user")
		}
		return fmt.Errorf("get reporting supervisor: %w", err)
	}
	if u.Role != domain.UserRoleSupervisor {
		return domain.NewValidationError("reportsTo", "must be a supervisor")
	}
	return nil
}
