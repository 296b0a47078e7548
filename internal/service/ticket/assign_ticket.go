package ticket

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/civicdesk-backend/internal/access"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// AssignTicket dispatches a ticket to a staff worker. A supervisor who
// assigns a ticket becomes its current supervisor. Re-assignment of a ticket
// that is already assigned or in progress is allowed.
func (s *Service) AssignTicket(ctx context.Context, input AssignTicketInput) (_ *domain.Ticket, err error) {
	defer s.observe(OpAssignTicket, &err)

	actor, err := authorize(ctx, OpAssignTicket, domain.UserRoleSupervisor, domain.UserRoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.run(ctx, transition{
		op:       OpAssignTicket,
		actor:    actor,
		ticketID: input.TicketID,
		filter:   access.AssignmentScope(actor),
		event:    domain.EventTypeAssigned,
		message:  trimOrNil(input.Note),
		apply: func(ctx context.Context, _ *domain.Ticket, _ time.Time) (domain.TicketUpdate, error) {
			if err := s.requireRole(ctx, "assigneeId", input.AssigneeID, domain.UserRoleStaff); err != nil {
				return domain.TicketUpdate{}, err
			}

			upd := domain.TicketUpdate{
				Status:     domain.StatusPtr(domain.TicketStatusAssigned),
				AssignedTo: ptr(input.AssigneeID),
			}
			if actor.Role == domain.UserRoleSupervisor {
				upd.CurrentSupervisor = ptr(actor.UserID)
			}
			return upd, nil
		},
	})
}

// requireRole checks that userID names an existing user with the given role.
// Failures are reported as validation errors on field.
func (s *Service) requireRole(ctx context.Context, field, userID string, role domain.UserRole) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError(field, "unknown user")
		}
		return fmt.Errorf("get user: %w", err)
	}
	if u.Role != role {
		return domain.NewValidationError(field, "must be a "+role.String()+" user")
	}
	return nil
}
