package handler

import (
	"time"

	"github.com/itemvault/inventory-api/internal/core/domain"
	"github.com/itemvault/inventory-api/internal/core/ports"
)

type createItemRequest struct {
	Name        string  `json:"name"        validate:"required,min=3"`
	Description string  `json:"description" validate:"omitempty,min=10"`
	Category    string  `json:"category"    validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	ImageURL    string  `json:"image_url"   validate:"omitempty,url"`
}

// updateItemRequest is a partial variant of createItemRequest: absent fields
// leave the stored value unchanged.
type updateItemRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=3"`
	Description *string  `json:"description" validate:"omitempty,min=10"`
	Category    *string  `json:"category"    validate:"omitempty,min=1"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock"       validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url"   validate:"omitempty,url"`
}

type itemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type listItemsResponse struct {
	Data       []itemResponse   `json:"data"`
	Pagination ports.Pagination `json:"pagination"`
}

func toItemResponse(item *domain.Item) itemResponse {
	return itemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Category:    item.Category,
		Price:       item.Price,
		Stock:       item.Stock,
		ImageURL:    item.ImageURL,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toListResponse(r *ports.ListItemsResult) listItemsResponse {
	data := make([]itemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		data = append(data, toItemResponse(item))
	}
	return listItemsResponse{Data: data, Pagination: r.Pagination}
}
