package ticket

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/civicdesk-backend/internal/access"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// EscalateToSupervisor hands a ticket assigned to the calling worker to a
// supervisor. Without an explicit supervisor the worker's reports_to is used.
func (s *Service) EscalateToSupervisor(ctx context.Context, input EscalateInput) (_ *domain.Ticket, err error) {
	defer s.observe(OpEscalateToSupervisor, &err)

	actor, err := authorize(ctx, OpEscalateToSupervisor, domain.UserRoleStaff)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.run(ctx, transition{
		op:       OpEscalateToSupervisor,
		actor:    actor,
		ticketID: input.TicketID,
		filter:   access.Scope(actor),
		event:    domain.EventTypeEscalated,
		message:  trimOrNil(input.Reason),
		apply: func(ctx context.Context, _ *domain.Ticket, _ time.Time) (domain.TicketUpdate, error) {
			supervisorID, err := s.escalationTarget(ctx, actor.UserID, input.SupervisorID)
			if err != nil {
				return domain.TicketUpdate{}, err
			}
			if err := s.requireRole(ctx, "supervisorId", supervisorID, domain.UserRoleSupervisor); err != nil {
				return domain.TicketUpdate{}, err
			}

			return domain.TicketUpdate{
				Status:            domain.StatusPtr(domain.TicketStatusWaitingSupervisor),
				CurrentSupervisor: ptr(supervisorID),
			}, nil
		},
	})
}

func (s *Service) escalationTarget(ctx context.Context, staffID string, explicit *string) (string, error) {
	if explicit != nil {
		return *explicit, nil
	}

	profile, err := s.profiles.GetByUserID(ctx, staffID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("get staff profile: %w", err)
	}
	if profile == nil || profile.ReportsTo == nil {
		return "", domain.NewValidationError("supervisorId", "required when no reporting supervisor is configured")
	}
	return *profile.ReportsTo, nil
}
