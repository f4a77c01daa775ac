package catalog

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pizzeria-backend/internal/apierr"
	"pizzeria-backend/internal/models"
	"pizzeria-backend/internal/query"
)

const defaultMenuLimit = 50

// Store is the storage collaborator for categories and menu items.
type Store interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error)
	ResolveCategorySlug(ctx context.Context, slug string) (string, error)
	CountMenuItems(ctx context.Context, f models.MenuFilter) (int, error)
	ListMenuItems(ctx context.Context, f models.MenuFilter, limit, offset int) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*models.MenuItemDetail, error)
}

// Service implements the read-only menu browsing operations.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *Service) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apierr.NotFound("Category")
	}
	return s.store.GetCategoryByID(ctx, id)
}

func (s *Service) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.store.GetCategoryBySlug(ctx, slug)
}

// ListMenu applies the combined menu filters and returns one page of items.
// The count and page queries are dispatched concurrently; both are read-only
// snapshots of the same predicate.
func (s *Service) ListMenu(ctx context.Context, params url.Values) ([]models.MenuItem, query.Pagination, error) {
	page := query.Page(params.Get("page"))
	limit := query.Limit(params.Get("limit"), defaultMenuLimit)

	filter, err := s.buildMenuFilter(ctx, params)
	if err != nil {
		return nil, query.Pagination{}, err
	}

	var (
		total int
		items []models.MenuItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.store.CountMenuItems(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = s.store.ListMenuItems(gctx, filter, limit, query.Offset(page, limit))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, query.Pagination{}, err
	}

	if items == nil {
		items = []models.MenuItem{}
	}
	return items, query.NewPagination(page, limit, total), nil
}

func (s *Service) buildMenuFilter(ctx context.Context, params url.Values) (models.MenuFilter, error) {
	var f models.MenuFilter

	if id := params.Get("categoryId"); id != "" {
		if _, err := uuid.Parse(id); err != nil {
			f.MatchNothing = true
		} else {
			f.CategoryID = &id
		}
	}
	if slug := params.Get("categorySlug"); slug != "" {
		id, err := s.store.ResolveCategorySlug(ctx, slug)
		if err != nil {
			return f, err
		}
		if id == "" {
			// Unknown slug matches nothing, not an error.
			f.MatchNothing = true
		} else {
			f.CategoryID = &id
		}
	}

	f.Vegetarian = query.BoolFilter(params.Get("vegetarian"))
	f.Spicy = query.BoolFilter(params.Get("spicy"))
	f.Bestseller = query.BoolFilter(params.Get("bestseller"))

	available := query.Available(params.Get("available"))
	f.Available = &available

	return f, nil
}

func (s *Service) GetMenuItem(ctx context.Context, id string) (*models.MenuItemDetail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apierr.NotFound("Menu item")
	}
	return s.store.GetMenuItem(ctx, id)
}
