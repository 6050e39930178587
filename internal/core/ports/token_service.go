package ports

import (
	"time"

	"github.com/itemvault/inventory-api/internal/core/domain"
)

// TokenClaims is the verified identity embedded in a session token.
type TokenClaims struct {
	UserID    string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless session tokens. Verify reports
// domain.ErrTokenMalformed, domain.ErrTokenExpired or
// domain.ErrTokenSignatureInvalid; there is no revocation path.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}
