// Package access maps an actor to the set of tickets it may see and act on.
// Filters are plain values; storage adapters render them into queries and
// Allows evaluates the same rule in memory.
package access

import "github.com/heartmarshall/civicdesk-backend/internal/domain"

// Kind selects which ticket column binds the actor.
type Kind int

const (
	// KindUnrestricted matches every ticket.
	KindUnrestricted Kind = iota
	// KindOwner matches tickets where created_by = UserID.
	KindOwner
	// KindAssignee matches tickets where assigned_to = UserID.
	KindAssignee
	// KindSupervisor matches tickets where current_supervisor = UserID
	// or assigned_to = UserID.
	KindSupervisor
)

func (k Kind) String() string {
	switch k {
	case KindOwner:
		return "owner"
	case KindAssignee:
		return "assignee"
	case KindSupervisor:
		return "supervisor"
	default:
		return "unrestricted"
	}
}

// Filter is a role-scoped ticket predicate.
type Filter struct {
	Kind   Kind
	UserID string

	// IncludeUnrouted widens a supervisor filter to tickets that have no
	// current supervisor yet.
	IncludeUnrouted bool
}

// Scope returns the visibility filter for actor.
// Admins and unrecognised roles are unrestricted.
func Scope(actor domain.Actor) Filter {
	switch actor.Role {
	case domain.UserRoleCitizen:
		return citizenScope(actor.UserID)
	case domain.UserRoleStaff:
		return staffScope(actor.UserID)
	case domain.UserRoleSupervisor:
		return supervisorScope(actor.UserID)
	default:
		return Unrestricted()
	}
}

// AssignmentScope is the filter used when dispatching a ticket to a worker.
// A supervisor additionally sees unrouted tickets so that fresh citizen
// reports can be triaged.
func AssignmentScope(actor domain.Actor) Filter {
	f := Scope(actor)
	if f.Kind == KindSupervisor {
		f.IncludeUnrouted = true
	}
	return f
}

func citizenScope(userID string) Filter {
	return Filter{Kind: KindOwner, UserID: userID}
}

func staffScope(userID string) Filter {
	return Filter{Kind: KindAssignee, UserID: userID}
}

func supervisorScope(userID string) Filter {
	return Filter{Kind: KindSupervisor, UserID: userID}
}

// Unrestricted returns a filter that matches every ticket. It is used by
// internal callers that have already authorised the request.
func Unrestricted() Filter {
	return Filter{Kind: KindUnrestricted}
}

// IsUnrestricted reports whether the filter matches every ticket.
func (f Filter) IsUnrestricted() bool {
	return f.Kind == KindUnrestricted
}

// Allows reports whether t passes the filter.
func (f Filter) Allows(t *domain.Ticket) bool {
	if t == nil {
		return false
	}
	switch f.Kind {
	case KindOwner:
		return t.CreatedBy == f.UserID
	case KindAssignee:
		return eq(t.AssignedTo, f.UserID)
	case KindSupervisor:
		if eq(t.CurrentSupervisor, f.UserID) || eq(t.AssignedTo, f.UserID) {
			return true
		}
		return f.IncludeUnrouted && t.CurrentSupervisor == nil
	default:
		return true
	}
}

func eq(p *string, v string) bool {
	return p != nil && *p == v
}
