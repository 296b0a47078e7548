package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/civicdesk-backend/internal/access"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
	"github.com/heartmarshall/civicdesk-backend/pkg/ctxutil"
)

// transition is one role-gated change to an existing ticket.
type transition struct {
	op             string
	actor          domain.Actor
	ticketID       string
	filter         access.Filter
	event          domain.EventType
	message        *string
	attachmentURLs []string

	// apply inspects the locked row and returns the update to write. now is
	// the timestamp stamped on the row and the event.
	// A nil Status keeps the current status.
	apply func(ctx context.Context, current *domain.Ticket, now time.Time) (domain.TicketUpdate, error)
}

// authorize returns the context actor if its role is one of allowed.
func authorize(ctx context.Context, op string, allowed ...domain.UserRole) (domain.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	if !actor.HasRole(allowed...) {
		return actor, &domain.RoleError{Operation: op, Role: actor.Role}
	}
	return actor, nil
}

func (s *Service) observe(op string, err *error) {
	s.metrics.ObserveTransition(op, *err)
}

// run loads the ticket under tr.filter with a row lock, applies the update
// and appends the event and attachments, all in one transaction.
func (s *Service) run(ctx context.Context, tr transition) (*domain.Ticket, error) {
	now := s.now()

	var (
		updated *domain.Ticket
		from    domain.TicketStatus
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.tickets.GetScoped(txCtx, tr.ticketID, tr.filter, true)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrTicketNotVisible
			}
			return fmt.Errorf("load ticket: %w", err)
		}
		from = current.Status

		upd, err := tr.apply(txCtx, current, now)
		if err != nil {
			return err
		}

		updated, err = s.tickets.Update(txCtx, current.ID, upd, now)
		if err != nil {
			return fmt.Errorf("update ticket: %w", err)
		}

		if err := s.events.Append(txCtx, &domain.TicketEvent{
			ID:         uuid.NewString(),
			TicketID:   current.ID,
			ActorID:    tr.actor.UserID,
			Type:       tr.event,
			FromStatus: domain.StatusPtr(from),
			ToStatus:   domain.StatusPtr(updated.Status),
			Message:    tr.message,
			CreatedAt:  now,
		}); err != nil {
			return fmt.Errorf("append event: %w", err)
		}

		if err := s.attachments.AppendMany(txCtx, newAttachments(current.ID, tr.actor.UserID, tr.attachmentURLs, now)); err != nil {
			return fmt.Errorf("append attachments: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "ticket transitioned",
		slog.String("operation", tr.op),
		slog.String("ticket_id", updated.ID),
		slog.String("actor_id", tr.actor.UserID),
		slog.String("from", from.String()),
		slog.String("to", updated.Status.String()),
	)

	return updated, nil
}
