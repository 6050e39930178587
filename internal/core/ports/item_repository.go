package ports

import (
	"context"

	"github.com/itemvault/inventory-api/internal/core/domain"
)

// ListItemsFilter carries all query parameters for listing items.
type ListItemsFilter struct {
	Name     string // optional: case-insensitive substring match on name
	Category string // optional: exact match
	Page     int    // 1-based
	Limit    int    // max rows per page (capped at 100 by the service)
}

// ItemRepository defines persistence operations for catalog items.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	Update(ctx context.Context, id string, patch ItemPatch) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
	// List returns a page of items matching filter plus the total count under
	// the same filter, independent of paging.
	List(ctx context.Context, filter ListItemsFilter) ([]*domain.Item, int64, error)
}

// ItemPatch is a partial update; nil fields are left untouched.
type ItemPatch struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Stock       *int
	ImageURL    *string
}
