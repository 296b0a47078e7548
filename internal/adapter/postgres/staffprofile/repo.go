// Package staffprofile implements staff profile persistence using PostgreSQL.
package staffprofile

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/civicdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

const entity = "staff_profile"

// Repo provides staff profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new staff profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByUserID returns the profile of a staff user.
func (r *Repo) GetByUserID(ctx context.Context, userID string) (*domain.StaffProfile, error) {
	sql, args, err := postgres.Builder().
		Select("user_id", "department", "ward", "reports_to", "created_at", "updated_at").
		From("staff_profiles").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get staff profile: %w", err)
	}

	p, err := scanProfile(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, userID)
	}
	return p, nil
}

// Upsert creates the profile or replaces its placement fields.
func (r *Repo) Upsert(ctx context.Context, p *domain.StaffProfile) (*domain.StaffProfile, error) {
	sql, args, err := postgres.Builder().
		Insert("staff_profiles").
		Columns("user_id", "department", "ward", "reports_to", "created_at", "updated_at").
		Values(p.UserID, p.Department, p.Ward, p.ReportsTo, p.CreatedAt, p.UpdatedAt).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			department = EXCLUDED.department,
			ward = EXCLUDED.ward,
			reports_to = EXCLUDED.reports_to,
			updated_at = EXCLUDED.updated_at
		RETURNING user_id, department, ward, reports_to, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert staff profile: %w", err)
	}

	saved, err := scanProfile(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, entity, p.UserID)
	}
	return saved, nil
}

func scanProfile(row pgx.Row) (*domain.StaffProfile, error) {
	var p domain.StaffProfile
	if err := row.Scan(&p.UserID, &p.Department, &p.Ward, &p.ReportsTo, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
