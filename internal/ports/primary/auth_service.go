package primary

import (
	"context"

	"github.com/clubsphere/backend/internal/domain/entity"
)

// AuthService defines the interface for authentication use cases. Role
// resolution is polymorphic: each role has its own credential strategy.
type AuthService interface {
	// Authenticate resolves the credentials for the given role and issues a
	// server-side session token.
	Authenticate(ctx context.Context, email, password string, role entity.Role) (*entity.User, string, error)
	// Resolve returns the user bound to a session token, or ErrInvalidCredentials.
	Resolve(ctx context.Context, token string) (*entity.User, error)
	Logout(ctx context.Context, token string) error
}
