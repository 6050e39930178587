package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/itemvault/inventory-api/internal/core/domain"
	"github.com/itemvault/inventory-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// ItemService implements catalog CRUD and the paginated listing protocol.
type ItemService struct {
	repo   ports.ItemRepository
	cache  ports.ItemCache
	logger zerolog.Logger
}

// NewItemService builds an ItemService. cache may be nil, in which case every
// read goes straight to the repository.
func NewItemService(repo ports.ItemRepository, cache ports.ItemCache, logger zerolog.Logger) *ItemService {
	return &ItemService{repo: repo, cache: cache, logger: logger}
}

func (s *ItemService) Create(ctx context.Context, input ports.CreateItemInput) (*domain.Item, error) {
	now := time.Now().UTC()
	item := &domain.Item{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create item")
		return nil, err
	}

	s.logger.Info().Str("item_id", created.ID).Str("name", created.Name).Msg("item created")
	return created, nil
}

func (s *ItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	if s.cache != nil {
		if item, ok := s.cache.Get(ctx, id); ok {
			return item, nil
		}
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, item)
	}
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, id string, patch ports.ItemPatch) (*domain.Item, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return updated, nil
}

func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return nil
}

// List returns one page of items plus pagination metadata. The repository
// reads the count and the page slice under the identical filter; the metadata
// is derived from the count, so a concurrent write between the two reads can
// shift totals by a row but never produces an inconsistent envelope.
func (s *ItemService) List(ctx context.Context, input ports.ListItemsInput) (*ports.ListItemsResult, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListItemsFilter{
		Name:     input.Name,
		Category: input.Category,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list items")
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &ports.ListItemsResult{
		Items: items,
		Pagination: ports.Pagination{
			CurrentPage:     page,
			ItemsPerPage:    limit,
			TotalItems:      total,
			TotalPages:      totalPages,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		},
	}, nil
}
