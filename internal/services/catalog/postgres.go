package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"pizzeria-backend/internal/apierr"
	"pizzeria-backend/internal/database"
	"pizzeria-backend/internal/models"
)

// PostgresStore runs catalog queries against the shared connection pool.
type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const categoryColumns = `id, name, slug, description, display_order, created_at, updated_at`

const menuItemColumns = `m.id, m.name, m.description, m.ingredients, m.price, m.image,
	m.category_id, m.is_vegetarian, m.is_spicy, m.is_bestseller, m.spice_level,
	m.tags, m.is_available, m.created_at, m.updated_at`

func (s *PostgresStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.Query(ctx, `
		SELECT c.id, c.name, c.slug, c.description, c.display_order, c.created_at, c.updated_at,
		       (SELECT COUNT(*) FROM menu_items m WHERE m.category_id = c.id)
		FROM categories c
		ORDER BY c.display_order ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		var count int
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.DisplayOrder,
			&c.CreatedAt, &c.UpdatedAt, &count); err != nil {
			return nil, err
		}
		c.MenuItemCount = &count
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *PostgresStore) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	return s.getCategory(ctx, "id", id)
}

func (s *PostgresStore) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.getCategory(ctx, "slug", slug)
}

func (s *PostgresStore) getCategory(ctx context.Context, column, value string) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM categories WHERE %s = $1`, categoryColumns, column),
		value,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.DisplayOrder, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.NotFound("Category")
	}
	if err != nil {
		return nil, fmt.Errorf("get category by %s: %w", column, err)
	}

	rows, err := s.db.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM menu_items m WHERE m.category_id = $1 ORDER BY m.name ASC`, menuItemColumns),
		c.ID)
	if err != nil {
		return nil, fmt.Errorf("get category items: %w", err)
	}
	defer rows.Close()

	c.MenuItems = []models.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		c.MenuItems = append(c.MenuItems, item)
	}
	return &c, rows.Err()
}

// ResolveCategorySlug returns the category id for a slug, or "" when no
// category matches.
func (s *PostgresStore) ResolveCategorySlug(ctx context.Context, slug string) (string, error) {
	var id string
	err := s.db.QueryRow(ctx, `SELECT id FROM categories WHERE slug = $1`, slug).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("resolve category slug: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) CountMenuItems(ctx context.Context, f models.MenuFilter) (int, error) {
	where, args := menuWhere(f)
	var total int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items m `+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count menu items: %w", err)
	}
	return total, nil
}

func (s *PostgresStore) ListMenuItems(ctx context.Context, f models.MenuFilter, limit, offset int) ([]models.MenuItem, error) {
	where, args := menuWhere(f)
	args = append(args, limit, offset)
	sql := fmt.Sprintf(`
		SELECT %s, c.id, c.name, c.slug
		FROM menu_items m
		JOIN categories c ON c.id = m.category_id
		%s
		ORDER BY m.category_id ASC, m.name ASC
		LIMIT $%d OFFSET $%d`, menuItemColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var item models.MenuItem
		var cat models.CategorySummary
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Ingredients,
			&item.Price, &item.Image, &item.CategoryID, &item.IsVegetarian, &item.IsSpicy,
			&item.IsBestseller, &item.SpiceLevel, &item.Tags, &item.IsAvailable,
			&item.CreatedAt, &item.UpdatedAt, &cat.ID, &cat.Name, &cat.Slug); err != nil {
			return nil, err
		}
		item.Category = &cat
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetMenuItem loads one item with its full category row, unlike the list
// endpoint's slim category summary.
func (s *PostgresStore) GetMenuItem(ctx context.Context, id string) (*models.MenuItemDetail, error) {
	var detail models.MenuItemDetail
	var cat models.Category
	item := &detail.MenuItem
	err := s.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s, c.id, c.name, c.slug, c.description, c.display_order, c.created_at, c.updated_at
		FROM menu_items m
		JOIN categories c ON c.id = m.category_id
		WHERE m.id = $1`, menuItemColumns),
		id,
	).Scan(&item.ID, &item.Name, &item.Description, &item.Ingredients, &item.Price,
		&item.Image, &item.CategoryID, &item.IsVegetarian, &item.IsSpicy,
		&item.IsBestseller, &item.SpiceLevel, &item.Tags, &item.IsAvailable,
		&item.CreatedAt, &item.UpdatedAt,
		&cat.ID, &cat.Name, &cat.Slug, &cat.Description, &cat.DisplayOrder,
		&cat.CreatedAt, &cat.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.NotFound("Menu item")
	}
	if err != nil {
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	detail.Category = &cat
	return &detail, nil
}

func scanMenuItem(rows pgx.Rows) (models.MenuItem, error) {
	var item models.MenuItem
	err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Ingredients,
		&item.Price, &item.Image, &item.CategoryID, &item.IsVegetarian, &item.IsSpicy,
		&item.IsBestseller, &item.SpiceLevel, &item.Tags, &item.IsAvailable,
		&item.CreatedAt, &item.UpdatedAt)
	return item, err
}

// menuWhere renders a MenuFilter as a WHERE clause with positional args.
func menuWhere(f models.MenuFilter) (string, []any) {
	if f.MatchNothing {
		return "WHERE FALSE", nil
	}

	var clauses []string
	var args []any
	add := func(expr string, v any) {
		args = append(args, v)
		clauses = append(clauses, fmt.Sprintf(expr, len(args)))
	}

	if f.CategoryID != nil {
		add("m.category_id = $%d", *f.CategoryID)
	}
	if f.Vegetarian != nil {
		add("m.is_vegetarian = $%d", *f.Vegetarian)
	}
	if f.Spicy != nil {
		add("m.is_spicy = $%d", *f.Spicy)
	}
	if f.Bestseller != nil {
		add("m.is_bestseller = $%d", *f.Bestseller)
	}
	if f.Available != nil {
		add("m.is_available = $%d", *f.Available)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}
