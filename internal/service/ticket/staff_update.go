package ticket

import (
	"context"
	"strings"
	"time"

	"github.com/heartmarshall/civicdesk-backend/internal/access"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// AddStaffUpdate records a progress note from the assigned worker without
// changing the ticket status. The comment event carries the current status
// as both from and to.
func (s *Service) AddStaffUpdate(ctx context.Context, input AddStaffUpdateInput) (_ *domain.Ticket, err error) {
	defer s.observe(OpAddStaffUpdate, &err)

	actor, err := authorize(ctx, OpAddStaffUpdate, domain.UserRoleStaff)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(s.limits); err != nil {
		return nil, err
	}

	return s.run(ctx, transition{
		op:             OpAddStaffUpdate,
		actor:          actor,
		ticketID:       input.TicketID,
		filter:         access.Scope(actor),
		event:          domain.EventTypeComment,
		message:        ptr(strings.TrimSpace(input.Message)),
		attachmentURLs: input.AttachmentURLs,
		apply: func(context.Context, *domain.Ticket, time.Time) (domain.TicketUpdate, error) {
			return domain.TicketUpdate{}, nil
		},
	})
}
