// Package attachment implements ticket attachment persistence using PostgreSQL.
// Only references to externally stored media are kept here.
package attachment

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/civicdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// Repo provides ticket attachment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new attachment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// AppendMany inserts all attachments in one statement. A nil or empty
// slice is a no-op.
func (r *Repo) AppendMany(ctx context.Context, attachments []domain.TicketAttachment) error {
	if len(attachments) == 0 {
		return nil
	}

	query := postgres.Builder().
		Insert("ticket_attachments").
		Columns("id", "ticket_id", "uploaded_by", "url", "kind", "mime_type", "caption", "created_at")
	for _, a := range attachments {
		query = query.Values(a.ID, a.TicketID, a.UploadedBy, a.URL, string(a.Kind), a.MimeType, a.Caption, a.CreatedAt)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build append attachments: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "ticket_attachment", attachments[0].TicketID)
	}
	return nil
}

// ListByTicket returns the ticket's attachments with the uploader's display
// name, oldest first. Returns an empty slice (not nil) when none exist.
func (r *Repo) ListByTicket(ctx context.Context, ticketID string) ([]domain.TicketAttachment, error) {
	sql, args, err := postgres.Builder().
		Select("a.id", "a.ticket_id", "a.uploaded_by", "a.url", "a.kind", "a.mime_type",
			"a.caption", "a.created_at", "COALESCE(u.name, '')").
		From("ticket_attachments a").
		LeftJoin("users u ON u.id = a.uploaded_by").
		Where(sq.Eq{"a.ticket_id": ticketID}).
		OrderBy("a.created_at ASC", "a.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list attachments: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list attachments for ticket %s: %w", ticketID, err)
	}
	defer rows.Close()

	result := make([]domain.TicketAttachment, 0)
	for rows.Next() {
		var (
			a    domain.TicketAttachment
			kind string
		)
		if err := rows.Scan(&a.ID, &a.TicketID, &a.UploadedBy, &a.URL, &kind, &a.MimeType,
			&a.Caption, &a.CreatedAt, &a.UploaderName); err != nil {
			return nil, fmt.Errorf("scan attachment: %w", err)
		}
		a.Kind = domain.AttachmentKind(kind)
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attachments for ticket %s: %w", ticketID, err)
	}

	return result, nil
}
