package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Lucifer06sai/saiflix/logger"
	"github.com/Lucifer06sai/saiflix/models"
	"github.com/Lucifer06sai/saiflix/services"
)

type contextKey string

const userContextKey contextKey = "sessionUser"

// UserFromContext returns the session identity injected by RequireAuth.
func UserFromContext(ctx context.Context) (models.SessionUser, bool) {
	user, ok := ctx.Value(userContextKey).(models.SessionUser)
	return user, ok
}

// RequireAuth rejects requests without a session identity and threads the
// identity through the request context for downstream handlers.
func RequireAuth(auth *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.CurrentUser(r)
			if err != nil {
				logger.Debug("Rejecting unauthenticated request", "path", r.URL.Path)
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin is RequireAuth plus a role check. The check is against the
// role tier, not a specific account.
func RequireAdmin(auth *services.AuthService) func(http.Handler) http.Handler {
	requireAuth := RequireAuth(auth)
	return func(next http.Handler) http.Handler {
		return requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || !user.IsAdmin() {
				logger.Warn("Rejecting non-admin request", "path", r.URL.Path, "username", user.Username)
				writeJSONError(w, http.StatusForbidden, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		}))
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
