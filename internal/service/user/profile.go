package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
	"github.com/heartmarshall/civicdesk-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile. Staff and supervisors
// also get their staff profile if one has been provisioned.
// Returns ErrUnauthorized if no actor is found in context.
func (s *Service) GetProfile(ctx context.Context) (*Profile, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	result := &Profile{User: user}
	if !user.Role.IsStaffMember() {
		return result, nil
	}

	sp, err := s.profiles.GetByUserID(ctx, user.ID)
	switch {
	case err == nil:
		result.StaffProfile = sp
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, fmt.Errorf("user.GetProfile staff profile: %w", err)
	}

	return result, nil
}
