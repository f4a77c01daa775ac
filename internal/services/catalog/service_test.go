package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"

	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/models"
)

const categoryID = "44444444-4444-4444-8444-444444444444"

type stubStore struct {
	categories []models.Category
	category   *models.Category
	slugID     string
	items      []models.MenuItem
	total      int
	item       *models.MenuItemDetail

	lastFilter models.MenuFilter
}

func (s *stubStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories, nil
}

func (s *stubStore) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	return s.category, nil
}

func (s *stubStore) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.category, nil
}

func (s *stubStore) ResolveCategorySlug(ctx context.Context, slug string) (string, error) {
	return s.slugID, nil
}

func (s *stubStore) CountMenuItems(ctx context.Context, f models.MenuFilter) (int, error) {
	s.lastFilter = f
	return s.total, nil
}

func (s *stubStore) ListMenuItems(ctx context.Context, f models.MenuFilter, limit, offset int) ([]models.MenuItem, error) {
	return s.items, nil
}

func (s *stubStore) GetMenuItem(ctx context.Context, id string) (*models.MenuItemDetail, error) {
	return s.item, nil
}

func TestBuildMenuFilter(t *testing.T) {
	tests := []struct {
		name   string
		params url.Values
		slugID string
		check  func(t *testing.T, f models.MenuFilter)
	}{
		{
			name:   "no params defaults to available only",
			params: url.Values{},
			check: func(t *testing.T, f models.MenuFilter) {
				if f.Available == nil || !*f.Available {
					t.Errorf("Available = %v, want available-only", f.Available)
				}
				if f.Vegetarian != nil || f.Spicy != nil || f.Bestseller != nil {
					t.Errorf("unexpected flag filters: %+v", f)
				}
			},
		},
		{
			name:   "available=false selects unavailable",
			params: url.Values{"available": {"false"}},
			check: func(t *testing.T, f models.MenuFilter) {
				if f.Available == nil || *f.Available {
					t.Errorf("Available = %v, want unavailable", f.Available)
				}
			},
		},
		{
			name:   "vegetarian flag only on literal true",
			params: url.Values{"vegetarian": {"true"}, "spicy": {"yes"}},
			check: func(t *testing.T, f models.MenuFilter) {
				if f.Vegetarian == nil || !*f.Vegetarian {
					t.Errorf("Vegetarian = %v, want true", f.Vegetarian)
				}
				if f.Spicy != nil {
					t.Errorf("Spicy = %v, want absent", f.Spicy)
				}
			},
		},
		{
			name:   "malformed category id matches nothing",
			params: url.Values{"categoryId": {"not-a-uuid"}},
			check: func(t *testing.T, f models.MenuFilter) {
				if !f.MatchNothing {
					t.Error("expected MatchNothing")
				}
			},
		},
		{
			name:   "known slug resolves to category id",
			params: url.Values{"categorySlug": {"pizzas"}},
			slugID: categoryID,
			check: func(t *testing.T, f models.MenuFilter) {
				if f.CategoryID == nil || *f.CategoryID != categoryID {
					t.Errorf("CategoryID = %v, want %s", f.CategoryID, categoryID)
				}
			},
		},
		{
			name:   "unknown slug matches nothing",
			params: url.Values{"categorySlug": {"ghost"}},
			check: func(t *testing.T, f models.MenuFilter) {
				if !f.MatchNothing {
					t.Error("expected MatchNothing for unknown slug")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&stubStore{slugID: tt.slugID})
			f, err := svc.buildMenuFilter(context.Background(), tt.params)
			if err != nil {
				t.Fatalf("buildMenuFilter: %v", err)
			}
			tt.check(t, f)
		})
	}
}

func TestListMenu_Pagination(t *testing.T) {
	store := &stubStore{total: 120, items: []models.MenuItem{{ID: "x"}}}
	svc := NewService(store)

	_, p, err := svc.ListMenu(context.Background(), url.Values{})
	if err != nil {
		t.Fatalf("ListMenu: %v", err)
	}
	if p.Limit != 50 {
		t.Errorf("limit = %d, want default 50", p.Limit)
	}
	if p.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", p.TotalPages)
	}
}

func TestListMenu_EmptyIsNotNull(t *testing.T) {
	svc := NewService(&stubStore{})

	items, _, err := svc.ListMenu(context.Background(), url.Values{})
	if err != nil {
		t.Fatalf("ListMenu: %v", err)
	}
	if items == nil {
		t.Error("expected empty slice, got nil")
	}
}

// The single-item endpoint embeds the whole category row, not the
// {id,name,slug} summary the list endpoint projects.
func TestHandler_GetMenuItem_FullCategory(t *testing.T) {
	const itemID = "99999999-9999-4999-8999-999999999999"
	desc := "Wood-fired classics"
	store := &stubStore{
		item: &models.MenuItemDetail{
			MenuItem: models.MenuItem{ID: itemID, Name: "Margherita", CategoryID: categoryID},
			Category: &models.Category{
				ID:           categoryID,
				Name:         "Pizzas",
				Slug:         "pizzas",
				Description:  &desc,
				DisplayOrder: 2,
			},
		},
	}
	router := mux.NewRouter()
	NewHandler(NewService(store), logger.New("test")).Register(router)

	req := httptest.NewRequest(http.MethodGet, "/menu/"+itemID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		MenuItem struct {
			ID       string `json:"id"`
			Category struct {
				ID           string  `json:"id"`
				Slug         string  `json:"slug"`
				Description  *string `json:"description"`
				DisplayOrder int     `json:"displayOrder"`
			} `json:"category"`
		} `json:"menuItem"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.MenuItem.ID != itemID {
		t.Errorf("menu item id = %q", resp.MenuItem.ID)
	}
	cat := resp.MenuItem.Category
	if cat.ID != categoryID || cat.Slug != "pizzas" {
		t.Errorf("category = %+v", cat)
	}
	if cat.Description == nil || *cat.Description != desc {
		t.Errorf("description = %v, want full category row", cat.Description)
	}
	if cat.DisplayOrder != 2 {
		t.Errorf("displayOrder = %d, want 2", cat.DisplayOrder)
	}
}

func TestGetMenuItem_MalformedID(t *testing.T) {
	svc := NewService(&stubStore{})

	if _, err := svc.GetMenuItem(context.Background(), "nope"); err == nil {
		t.Fatal("expected not found for malformed id")
	}
}

func TestListCategories_EmptyIsNotNull(t *testing.T) {
	svc := NewService(&stubStore{})

	categories, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if categories == nil {
		t.Error("expected empty slice, got nil")
	}
}
