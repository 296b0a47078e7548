// Package ticket implements the ticket repository using PostgreSQL.
// Every read is parameterised by an access.Filter so role visibility is
// enforced in the WHERE clause rather than after the fact.
package ticket

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/civicdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/civicdesk-backend/internal/access"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

const (
	table  = "tickets"
	entity = "ticket"
)

var columns = []string{
	"id", "created_by", "category", "title", "description", "address_text",
	"lat", "lng", "status", "assigned_to", "current_supervisor",
	"citizen_rating", "citizen_feedback", "created_at", "updated_at", "closed_at",
}

// Repo provides ticket persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ticket repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a ticket and returns the persisted row.
func (r *Repo) Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	query := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			t.ID, t.CreatedBy, string(t.Category), t.Title, t.Description, t.AddressText,
			t.Lat, t.Lng, string(t.Status), t.AssignedTo, t.CurrentSupervisor,
			t.CitizenRating, t.CitizenFeedback, t.CreatedAt, t.UpdatedAt, t.ClosedAt,
		).
		Suffix(returning())

	return r.queryOne(ctx, query, t.ID)
}

// Update applies the non-nil fields of upd to the ticket and bumps
// updated_at. Returns domain.ErrNotFound if the row does not exist.
func (r *Repo) Update(ctx context.Context, id string, upd domain.TicketUpdate, updatedAt time.Time) (*domain.Ticket, error) {
	query := postgres.Builder().
		Update(table).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"id": id}).
		Suffix(returning())

	if upd.Status != nil {
		query = query.Set("status", string(*upd.Status))
	}
	if upd.AssignedTo != nil {
		query = query.Set("assigned_to", *upd.AssignedTo)
	}
	if upd.CurrentSupervisor != nil {
		query = query.Set("current_supervisor", *upd.CurrentSupervisor)
	}
	if upd.CitizenRating != nil {
		query = query.Set("citizen_rating", *upd.CitizenRating)
	}
	if upd.CitizenFeedback != nil {
		query = query.Set("citizen_feedback", *upd.CitizenFeedback)
	}
	if upd.ClosedAt != nil {
		query = query.Set("closed_at", *upd.ClosedAt)
	}

	return r.queryOne(ctx, query, id)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetScoped returns the ticket only if it matches filter. When forUpdate is
// set the row is locked until the surrounding transaction ends.
// Returns domain.ErrNotFound when the ticket is missing or filtered out.
func (r *Repo) GetScoped(ctx context.Context, id string, filter access.Filter, forUpdate bool) (*domain.Ticket, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		Where(postgres.ScopeCondition(filter, ""))

	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	return r.queryOne(ctx, query, id)
}

// ListByCreator returns tickets filed by userID, newest first.
func (r *Repo) ListByCreator(ctx context.Context, userID string) ([]domain.Ticket, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"created_by": userID}).
		OrderBy("created_at DESC", "id")

	return r.queryMany(ctx, query, "list tickets by creator")
}

// ListByAssignee returns tickets assigned to userID, most recently updated first.
func (r *Repo) ListByAssignee(ctx context.Context, userID string) ([]domain.Ticket, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"assigned_to": userID}).
		OrderBy("updated_at DESC", "id")

	return r.queryMany(ctx, query, "list tickets by assignee")
}

// ListSupervisorQueue returns tickets waiting on supervisorID, oldest update first.
func (r *Repo) ListSupervisorQueue(ctx context.Context, supervisorID string) ([]domain.Ticket, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{
			"current_supervisor": supervisorID,
			"status":             string(domain.TicketStatusWaitingSupervisor),
		}).
		OrderBy("updated_at ASC", "id")

	return r.queryMany(ctx, query, "list supervisor queue")
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func (r *Repo) queryOne(ctx context.Context, query sq.Sqlizer, id string) (*domain.Ticket, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build ticket query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	t, err := scanTicket(row)
	if err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return t, nil
}

func (r *Repo) queryMany(ctx context.Context, query sq.SelectBuilder, op string) ([]domain.Ticket, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make([]domain.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var (
		t        domain.Ticket
		category string
		status   string
	)
	err := row.Scan(
		&t.ID, &t.CreatedBy, &category, &t.Title, &t.Description, &t.AddressText,
		&t.Lat, &t.Lng, &status, &t.AssignedTo, &t.CurrentSupervisor,
		&t.CitizenRating, &t.CitizenFeedback, &t.CreatedAt, &t.UpdatedAt, &t.ClosedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Category = domain.TicketCategory(category)
	t.Status = domain.TicketStatus(status)
	return &t, nil
}
