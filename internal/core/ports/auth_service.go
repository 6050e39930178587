package ports

import (
	"context"

	"github.com/itemvault/inventory-api/internal/core/domain"
)

type AuthService interface {
	// Signup creates a user with the default role and returns a session token.
	Signup(ctx context.Context, email, password string) (string, *domain.User, error)
	// Login returns a fresh session token. Unknown email and wrong password
	// both surface as domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Profile returns the stored user for an authenticated identity.
	Profile(ctx context.Context, userID string) (*domain.User, error)
}

// PasswordHasher is a one-way credential hasher. The digest is
// self-describing, so Verify needs no side channel and never errors on a
// malformed digest; it just reports false.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
