package ports

import (
	"context"

	"github.com/itemvault/inventory-api/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
// Create must reject a duplicate email with domain.ErrEmailExists; uniqueness
// is the store's constraint, not the caller's pre-check.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
