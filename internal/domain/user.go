package domain

import "time"

// User represents an authenticated application user.
type User struct {
	ID           string
	Role         UserRole
	Name         string
	Phone        *string
	Email        *string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StaffProfile extends a staff user with organisational placement.
// ReportsTo is a weak reference to the user acting as the staff member's manager.
type StaffProfile struct {
	UserID     string
	Department *string
	Ward       *string
	ReportsTo  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Actor is the authenticated identity invoking an operation.
type Actor struct {
	UserID string
	Role   UserRole
}

// HasRole reports whether the actor's role is one of roles.
func (a Actor) HasRole(roles ...UserRole) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
