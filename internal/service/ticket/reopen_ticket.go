package ticket

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/civicdesk-backend/internal/access"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// ReopenTicket reopens the citizen's own closed ticket. Any other status is
// a rule violation and nothing is written.
func (s *Service) ReopenTicket(ctx context.Context, input ReopenInput) (_ *domain.Ticket, err error) {
	defer s.observe(OpReopenTicket, &err)

	actor, err := authorize(ctx, OpReopenTicket, domain.UserRoleCitizen)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.run(ctx, transition{
		op:       OpReopenTicket,
		actor:    actor,
		ticketID: input.TicketID,
		filter:   access.Scope(actor),
		event:    domain.EventTypeReopened,
		message:  ptr(strings.TrimSpace(input.Reason)),
		apply: func(_ context.Context, current *domain.Ticket, _ time.Time) (domain.TicketUpdate, error) {
			if current.Status != domain.TicketStatusClosed {
				return domain.TicketUpdate{}, fmt.Errorf("%w: only closed tickets can be reopened, ticket is %s",
					domain.ErrRuleViolation, current.Status)
			}
			return domain.TicketUpdate{Status: domain.StatusPtr(domain.TicketStatusReopened)}, nil
		},
	})
}
