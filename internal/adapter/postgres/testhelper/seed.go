package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.NewString()[:8]
}

// SeedUser inserts a user with the given role and a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	email := role.String() + "-" + suffix + "@example.com"
	user := domain.User{
		ID:           uuid.NewString(),
		Role:         role,
		Name:         "Test " + role.String() + " " + suffix,
		Email:        &email,
		PasswordHash: "$2a$04$seedseedseedseedseedseOq0lH1l6ZcA0sVRoxmCvyKqC1Rbm1dBq",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, role, name, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, string(user.Role), user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedStaffProfile inserts a staff profile for userID reporting to reportsTo (may be nil).
func SeedStaffProfile(t *testing.T, pool *pgxpool.Pool, userID string, reportsTo *string) domain.StaffProfile {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	ward := "Ward " + uniqueSuffix()
	p := domain.StaffProfile{
		UserID:    userID,
		Ward:      &ward,
		ReportsTo: reportsTo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO staff_profiles (user_id, ward, reports_to, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.UserID, p.Ward, p.ReportsTo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStaffProfile insert: %v", err)
	}

	return p
}

// TicketOption customises a seeded ticket before insert.
type TicketOption func(*domain.Ticket)

// WithStatus sets the ticket status.
func WithStatus(s domain.TicketStatus) TicketOption {
	return func(t *domain.Ticket) { t.Status = s }
}

// WithAssignee sets assigned_to.
func WithAssignee(userID string) TicketOption {
	return func(t *domain.Ticket) { t.AssignedTo = &userID }
}

// WithSupervisor sets current_supervisor.
func WithSupervisor(userID string) TicketOption {
	return func(t *domain.Ticket) { t.CurrentSupervisor = &userID }
}

// WithTimes overrides created_at and updated_at.
func WithTimes(createdAt, updatedAt time.Time) TicketOption {
	return func(t *domain.Ticket) {
		t.CreatedAt = createdAt.UTC().Truncate(time.Microsecond)
		t.UpdatedAt = updatedAt.UTC().Truncate(time.Microsecond)
	}
}

// SeedTicket inserts a ticket owned by createdBy in status "new" unless
// overridden by opts.
func SeedTicket(t *testing.T, pool *pgxpool.Pool, createdBy string, opts ...TicketOption) domain.Ticket {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	ticket := domain.Ticket{
		ID:          uuid.NewString(),
		CreatedBy:   createdBy,
		Category:    domain.TicketCategoryWater,
		Description: "Seeded ticket " + uniqueSuffix(),
		Status:      domain.TicketStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(&ticket)
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tickets (id, created_by, category, description, status, assigned_to,
		                      current_supervisor, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		ticket.ID, ticket.CreatedBy, string(ticket.Category), ticket.Description, string(ticket.Status),
		ticket.AssignedTo, ticket.CurrentSupervisor, ticket.CreatedAt, ticket.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTicket insert: %v", err)
	}

	return ticket
}
