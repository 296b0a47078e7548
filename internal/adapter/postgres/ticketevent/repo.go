// Package ticketevent implements the append-only ticket event log using PostgreSQL.
package ticketevent

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/civicdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// Repo provides ticket event persistence backed by PostgreSQL.
// Events are never updated or deleted.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ticket event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Append inserts one event row.
func (r *Repo) Append(ctx context.Context, e *domain.TicketEvent) error {
	sql, args, err := postgres.Builder().
		Insert("ticket_events").
		Columns("id", "ticket_id", "actor_id", "type", "from_status", "to_status", "message", "created_at").
		Values(e.ID, e.TicketID, e.ActorID, string(e.Type),
			statusOrNil(e.FromStatus), statusOrNil(e.ToStatus), e.Message, e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build append event: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "ticket_event", e.ID)
	}
	return nil
}

// ListByTicket returns the ticket's events with the actor's display name,
// in the order they happened. Returns an empty slice (not nil) when none exist.
func (r *Repo) ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketEvent, error) {
	sql, args, err := postgres.Builder().
		Select("e.id", "e.ticket_id", "e.actor_id", "e.type", "e.from_status", "e.to_status",
			"e.message", "e.created_at", "COALESCE(u.name, '')").
		From("ticket_events e").
		LeftJoin("users u ON u.id = e.actor_id").
		Where(sq.Eq{"e.ticket_id": ticketID}).
		OrderBy("e.created_at ASC", "e.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list events for ticket %s: %w", ticketID, err)
	}
	defer rows.Close()

	events := make([]domain.TicketEvent, 0)
	for rows.Next() {
		var (
			e         domain.TicketEvent
			eventType string
			from, to  *string
		)
		if err := rows.Scan(&e.ID, &e.TicketID, &e.ActorID, &eventType, &from, &to,
			&e.Message, &e.CreatedAt, &e.ActorName); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Type = domain.EventType(eventType)
		e.FromStatus = toStatus(from)
		e.ToStatus = toStatus(to)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events for ticket %s: %w", ticketID, err)
	}

	return events, nil
}

func statusOrNil(s *domain.TicketStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func toStatus(s *string) *domain.TicketStatus {
	if s == nil {
		return nil
	}
	return domain.StatusPtr(domain.TicketStatus(*s))
}
