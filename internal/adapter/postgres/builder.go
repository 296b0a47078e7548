package postgres

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/civicdesk-backend/internal/access"
)

// Builder returns a squirrel statement builder using $N placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// ScopeCondition renders an access filter as a WHERE condition on the
// tickets table. prefix is the table alias including the dot ("t.") or empty.
// An unrestricted filter renders as nil, meaning no condition.
func ScopeCondition(f access.Filter, prefix string) sq.Sqlizer {
	switch f.Kind {
	case access.KindOwner:
		return sq.Eq{prefix + "created_by": f.UserID}
	case access.KindAssignee:
		return sq.Eq{prefix + "assigned_to": f.UserID}
	case access.KindSupervisor:
		cond := sq.Or{
			sq.Eq{prefix + "current_supervisor": f.UserID},
			sq.Eq{prefix + "assigned_to": f.UserID},
		}
		if f.IncludeUnrouted {
			cond = append(cond, sq.Eq{prefix + "current_supervisor": nil})
		}
		return cond
	default:
		return nil
	}
}
