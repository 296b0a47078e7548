package ticket

import (
	"context"
	"time"

	"github.com/heartmarshall/civicdesk-backend/internal/access"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// StartWork moves a ticket assigned to the calling worker to in_progress.
func (s *Service) StartWork(ctx context.Context, input StartWorkInput) (_ *domain.Ticket, err error) {
	defer s.observe(OpStartWork, &err)

	actor, err := authorize(ctx, OpStartWork, domain.UserRoleStaff)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.run(ctx, transition{
		op:       OpStartWork,
		actor:    actor,
		ticketID: input.TicketID,
		filter:   access.Scope(actor),
		event:    domain.EventTypeStatusChanged,
		apply: func(context.Context, *domain.Ticket, time.Time) (domain.TicketUpdate, error) {
			return domain.TicketUpdate{Status: domain.StatusPtr(domain.TicketStatusInProgress)}, nil
		},
	})
}
