package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/clubsphere/backend/internal/adapters/primary/http/respond"
	"github.com/clubsphere/backend/internal/domain/entity"
	"github.com/clubsphere/backend/internal/ports/primary"
	"github.com/clubsphere/backend/pkg/logger/types"
)

// SessionCookie carries the server-issued session token.
const SessionCookie = "session_id"

type ctxKey int

const userKey ctxKey = iota

type Handler struct {
	logger *types.Logger

	authService primary.AuthService
}

func New(authSvc primary.AuthService, lg *types.Logger) *Handler {
	return &Handler{
		logger:      lg,
		authService: authSvc,
	}
}

// RequireAuth resolves the session token (cookie or bearer header) into a
// user and stores it on the request context. The role is whatever the
// server-side session says; nothing is trusted from the client.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			respond.Message(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		user, err := h.authService.Resolve(r.Context(), token)
		if err != nil {
			respond.Error(w, h.logger, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

// RequireRole gates a route to one role. Must run after RequireAuth.
func (h *Handler) RequireRole(role entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			if user == nil || user.Role != role {
				respond.Message(w, http.StatusForbidden, "insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ContextWithUser binds an authenticated user to the context.
func ContextWithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user, or nil outside RequireAuth.
func UserFromContext(ctx context.Context) *entity.User {
	user, _ := ctx.Value(userKey).(*entity.User)
	return user
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
