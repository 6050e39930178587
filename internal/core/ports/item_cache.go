package ports

import (
	"context"

	"github.com/itemvault/inventory-api/internal/core/domain"
)

// ItemCache is a read-through cache for single-item lookups. Misses and
// backend failures both report false; the caller always falls back to the
// repository.
type ItemCache interface {
	Get(ctx context.Context, id string) (*domain.Item, bool)
	Set(ctx context.Context, item *domain.Item)
	Invalidate(ctx context.Context, id string)
}
