package ticket

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/civicdesk-backend/internal/access"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
	"github.com/heartmarshall/civicdesk-backend/pkg/ctxutil"
)

// MyTickets returns the citizen's own tickets, newest first.
func (s *Service) MyTickets(ctx context.Context) ([]domain.Ticket, error) {
	actor, err := authorize(ctx, OpMyTickets, domain.UserRoleCitizen)
	if err != nil {
		return nil, err
	}

	tickets, err := s.tickets.ListByCreator(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list my tickets: %w", err)
	}
	return tickets, nil
}

// AssignedTickets returns the worker's assigned tickets, most recently updated first.
func (s *Service) AssignedTickets(ctx context.Context) ([]domain.Ticket, error) {
	actor, err := authorize(ctx, OpAssignedTickets, domain.UserRoleStaff)
	if err != nil {
		return nil, err
	}

	tickets, err := s.tickets.ListByAssignee(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list assigned tickets: %w", err)
	}
	return tickets, nil
}

// SupervisorQueue returns tickets escalated to the supervisor, oldest update first.
func (s *Service) SupervisorQueue(ctx context.Context) ([]domain.Ticket, error) {
	actor, err := authorize(ctx, OpSupervisorQueue, domain.UserRoleSupervisor)
	if err != nil {
		return nil, err
	}

	tickets, err := s.tickets.ListSupervisorQueue(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("list supervisor queue: %w", err)
	}
	return tickets, nil
}

// TicketDetail is available to every role. It returns a visible ticket with its event and attachment history.
func (s *Service) TicketDetail(ctx context.Context, input TicketDetailInput) (*domain.TicketDetail, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	t, err := s.tickets.GetScoped(ctx, input.TicketID, access.Scope(actor), false)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrTicketNotVisible
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	events, err := s.events.ListByTicket(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	attachments, err := s.attachments.ListByTicket(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}

	return &domain.TicketDetail{Ticket: *t, Events: events, Attachments: attachments}, nil
}
