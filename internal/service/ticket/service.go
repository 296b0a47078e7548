// Package ticket implements the ticket lifecycle engine and the role-scoped
// read projections. Every mutation is role-gated before any I/O and runs as
// a single transaction that updates the ticket and appends exactly one event.
package ticket

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/civicdesk-backend/internal/access"
	"github.com/heartmarshall/civicdesk-backend/internal/config"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

type ticketRepo interface {
	Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	GetScoped(ctx context.Context, id string, filter access.Filter, forUpdate bool) (*domain.Ticket, error)
	Update(ctx context.Context, id string, upd domain.TicketUpdate, updatedAt time.Time) (*domain.Ticket, error)
	ListByCreator(ctx context.Context, userID string) ([]domain.Ticket, error)
	ListByAssignee(ctx context.Context, userID string) ([]domain.Ticket, error)
	ListSupervisorQueue(ctx context.Context, supervisorID string) ([]domain.Ticket, error)
}

type eventRepo interface {
	Append(ctx context.Context, e *domain.TicketEvent) error
	ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketEvent, error)
}

type attachmentRepo interface {
	AppendMany(ctx context.Context, attachments []domain.TicketAttachment) error
	ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketAttachment, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type staffProfileRepo interface {
	GetByUserID(ctx context.Context, userID string) (*domain.StaffProfile, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type transitionMetrics interface {
	ObserveTransition(operation string, err error)
}

// Operation names, shared with the transport catalogue and metrics labels.
const (
	OpCreateTicket         = "createTicket"
	OpAssignTicket         = "assignTicket"
	OpStartWork            = "startWork"
	OpAddStaffUpdate       = "addStaffUpdate"
	OpEscalateToSupervisor = "escalateToSupervisor"
	OpMarkResolved         = "markResolved"
	OpCitizenCloseTicket   = "citizenCloseTicket"
	OpReopenTicket         = "reopenTicket"

	OpMyTickets       = "myTickets"
	OpAssignedTickets = "assignedTickets"
	OpSupervisorQueue = "supervisorQueue"
	OpTicketDetail    = "ticketDetail"
)

// Service provides ticket lifecycle and query operations.
type Service struct {
	tickets     ticketRepo
	events      eventRepo
	attachments attachmentRepo
	users       userRepo
	profiles    staffProfileRepo
	tx          txManager
	metrics     transitionMetrics
	limits      config.TicketConfig
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new ticket Service.
func NewService(
	log *slog.Logger,
	tickets ticketRepo,
	events eventRepo,
	attachments attachmentRepo,
	users userRepo,
	profiles staffProfileRepo,
	tx txManager,
	metrics transitionMetrics,
	limits config.TicketConfig,
) *Service {
	return &Service{
		tickets:     tickets,
		events:      events,
		attachments: attachments,
		users:       users,
		profiles:    profiles,
		tx:          tx,
		metrics:     metrics,
		limits:      limits,
		log:         log.With("service", "ticket"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func ptr[T any](v T) *T {
	return &v
}
