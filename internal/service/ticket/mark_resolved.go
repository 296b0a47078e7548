package ticket

import (
	"context"
	"time"

	"github.com/heartmarshall/civicdesk-backend/internal/access"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// MarkResolved marks a visible ticket as resolved, optionally with proof
// attachments.
func (s *Service) MarkResolved(ctx context.Context, input MarkResolvedInput) (_ *domain.Ticket, err error) {
	defer s.observe(OpMarkResolved, &err)

	actor, err := authorize(ctx, OpMarkResolved, domain.UserRoleStaff, domain.UserRoleSupervisor)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	return s.run(ctx, transition{
		op:             OpMarkResolved,
		actor:          actor,
		ticketID:       input.TicketID,
		filter:         access.Scope(actor),
		event:          domain.EventTypeResolved,
		message:        trimOrNil(input.Note),
		attachmentURLs: input.AttachmentURLs,
		apply: func(context.Context, *domain.Ticket, time.Time) (domain.TicketUpdate, error) {
			return domain.TicketUpdate{Status: domain.StatusPtr(domain.TicketStatusResolved)}, nil
		},
	})
}
