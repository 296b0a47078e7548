package ticket

import (
	"context"
	"time"

	"github.com/heartmarshall/civicdesk-backend/internal/access"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// CitizenCloseTicket closes the citizen's own ticket and records their
// rating and feedback.
func (s *Service) CitizenCloseTicket(ctx context.Context, input CitizenCloseInput) (_ *domain.Ticket, err error) {
	defer s.observe(OpCitizenCloseTicket, &err)

	actor, err := authorize(ctx, OpCitizenCloseTicket, domain.UserRoleCitizen)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	feedback := trimOrNil(input.Feedback)

	return s.run(ctx, transition{
		op:       OpCitizenCloseTicket,
		actor:    actor,
		ticketID: input.TicketID,
		filter:   access.Scope(actor),
		event:    domain.EventTypeClosed,
		message:  feedback,
		apply: func(_ context.Context, _ *domain.Ticket, now time.Time) (domain.TicketUpdate, error) {
			return domain.TicketUpdate{
				Status:          domain.StatusPtr(domain.TicketStatusClosed),
				ClosedAt:        &now,
				CitizenRating:   input.Rating,
				CitizenFeedback: feedback,
			}, nil
		},
	})
}
