package ticket

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// CreateTicket files a new ticket on behalf of the authenticated citizen.
func (s *Service) CreateTicket(ctx context.Context, input CreateTicketInput) (_ *domain.Ticket, err error) {
	defer s.observe(OpCreateTicket, &err)

	actor, err := authorize(ctx, OpCreateTicket, domain.UserRoleCitizen)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	now := s.now()
	draft := &domain.Ticket{
		ID:          uuid.NewString(),
		CreatedBy:   actor.UserID,
		Category:    input.Category,
		Title:       trimOrNil(input.Title),
		Description: strings.TrimSpace(input.Description),
		AddressText: trimOrNil(input.AddressText),
		Lat:         input.Lat,
		Lng:         input.Lng,
		Status:      domain.TicketStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *domain.Ticket
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.tickets.Create(txCtx, draft)
		if createErr != nil {
			return fmt.Errorf("create ticket: %w", createErr)
		}

		if err := s.events.Append(txCtx, &domain.TicketEvent{
			ID:        uuid.NewString(),
			TicketID:  created.ID,
			ActorID:   actor.UserID,
			Type:      domain.EventTypeCreated,
			ToStatus:  domain.StatusPtr(domain.TicketStatusNew),
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("append event: %w", err)
		}

		if err := s.attachments.AppendMany(txCtx, newAttachments(created.ID, actor.UserID, input.AttachmentURLs, now)); err != nil {
			return fmt.Errorf("append attachments: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "ticket created",
		slog.String("ticket_id", created.ID),
		slog.String("actor_id", actor.UserID),
		slog.String("category", created.Category.String()),
		slog.Int("attachments", len(input.AttachmentURLs)),
	)

	return created, nil
}
