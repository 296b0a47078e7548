package middleware

import (
	"net/http"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
	"github.com/heartmarshall/civicdesk-backend/pkg/ctxutil"
)

// RequireAdmin rejects requests whose actor is not an admin with 403.
// Mount it after Auth and RequireActor.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ctxutil.ActorFromCtx(r.Context())
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if !actor.HasRole(domain.UserRoleAdmin) {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
