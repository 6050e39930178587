package ports

import (
	"context"

	"github.com/itemvault/inventory-api/internal/core/domain"
)

type ItemService interface {
	Create(ctx context.Context, input CreateItemInput) (*domain.Item, error)
	Get(ctx context.Context, id string) (*domain.Item, error)
	Update(ctx context.Context, id string, patch ItemPatch) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, input ListItemsInput) (*ListItemsResult, error)
}

// CreateItemInput carries all data needed to create a new item.
type CreateItemInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int
	ImageURL    string
}

// ListItemsInput carries all parameters for the list endpoint. Zero values
// for Page and Limit select the defaults (1 and 10).
type ListItemsInput struct {
	Name     string
	Category string
	Page     int
	Limit    int
}

// Pagination is the metadata block returned next to every page of results.
// TotalItems is the count under the same filter, independent of paging.
type Pagination struct {
	CurrentPage     int   `json:"currentPage"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	TotalItems      int64 `json:"totalItems"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// ListItemsResult is returned by List.
type ListItemsResult struct {
	Items      []*domain.Item
	Pagination Pagination
}
