package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pizzeria-backend/internal/apierr"
	"pizzeria-backend/internal/database"
	"pizzeria-backend/internal/models"
)

// Postgres error codes mapped to the API taxonomy.
const (
	pgForeignKeyViolation = "23503"
)

// PostgresStore runs order queries against the shared connection pool.
type PostgresStore struct {
	db *database.DB
}

func NewPostgresStore(db *database.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const orderColumns = `o.id, o.user_id, o.customer_name, o.customer_email, o.customer_phone,
	o.delivery_address, o.notes, o.status, o.total_amount, o.created_at, o.updated_at`

// CreateOrder persists the order and all of its items in one transaction:
// either every row becomes visible or none does. A foreign key violation on
// menu_item_id means the referenced menu item does not exist.
func (s *PostgresStore) CreateOrder(ctx context.Context, o *models.Order) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create order: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, customer_name, customer_email, customer_phone,
			delivery_address, notes, status, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		o.UserID, o.CustomerName, o.CustomerEmail, o.CustomerPhone,
		o.DeliveryAddress, o.Notes, o.Status, o.TotalAmount,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return mapCreateErr(err)
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price, subtotal, special_instructions)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			item.OrderID, item.MenuItemID, item.Quantity, item.UnitPrice,
			item.Subtotal, item.SpecialInstructions,
		).Scan(&item.ID)
		if err != nil {
			return mapCreateErr(err)
		}
	}

	return tx.Commit(ctx)
}

func mapCreateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		switch pgErr.ConstraintName {
		case "order_items_menu_item_id_fkey":
			return apierr.NotFound("Menu item")
		case "orders_user_id_fkey":
			return apierr.NotFound("User")
		}
	}
	return fmt.Errorf("create order: %w", err)
}

// MenuItemSummaries returns the {id, name} projection for a set of menu
// item ids, used to annotate order items in responses.
func (s *PostgresStore) MenuItemSummaries(ctx context.Context, ids []string) (map[string]models.MenuItemSummary, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name FROM menu_items WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("menu item summaries: %w", err)
	}
	defer rows.Close()

	summaries := make(map[string]models.MenuItemSummary, len(ids))
	for rows.Next() {
		var sum models.MenuItemSummary
		if err := rows.Scan(&sum.ID, &sum.Name); err != nil {
			return nil, err
		}
		summaries[sum.ID] = sum
	}
	return summaries, rows.Err()
}

func (s *PostgresStore) CountOrders(ctx context.Context, status *string) (int, error) {
	where, args := orderWhere(status)
	var total int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders o `+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return total, nil
}

func (s *PostgresStore) ListOrders(ctx context.Context, status *string, limit, offset int) ([]models.Order, error) {
	where, args := orderWhere(status)
	args = append(args, limit, offset)
	sql := fmt.Sprintf(`
		SELECT %s FROM orders o
		%s
		ORDER BY o.created_at DESC
		LIMIT $%d OFFSET $%d`, orderColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	index := make(map[string]int)
	var ids []string
	for rows.Next() {
		var o models.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		o.Items = []models.OrderItem{}
		index[o.ID] = len(orders)
		ids = append(ids, o.ID)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := s.orderItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		i := index[item.OrderID]
		orders[i].Items = append(orders[i].Items, item)
	}
	return orders, nil
}

func (s *PostgresStore) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	var userID, userEmail, userName *string
	err := s.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s, u.id, u.email, u.name
		FROM orders o
		LEFT JOIN users u ON u.id = o.user_id
		WHERE o.id = $1`, orderColumns),
		id,
	).Scan(&o.ID, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.DeliveryAddress, &o.Notes, &o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt,
		&userID, &userEmail, &userName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.NotFound("Order")
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if userID != nil && userEmail != nil {
		o.User = &models.UserSummary{ID: *userID, Email: *userEmail, Name: userName}
	}

	items, err := s.orderItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// UpdateStatus sets the order status and returns the updated order with its
// items. The caller has already checked membership in the status set.
func (s *PostgresStore) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	var o models.Order
	err := s.db.QueryRow(ctx, `
		UPDATE orders o SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING o.id, o.user_id, o.customer_name, o.customer_email, o.customer_phone,
			o.delivery_address, o.notes, o.status, o.total_amount, o.created_at, o.updated_at`,
		status, id,
	).Scan(&o.ID, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.DeliveryAddress, &o.Notes, &o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apierr.NotFound("Order")
	}
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	items, err := s.orderItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// orderItems loads the items of a set of orders, each annotated with its
// menu item summary.
func (s *PostgresStore) orderItems(ctx context.Context, orderIDs []string) ([]models.OrderItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT i.id, i.order_id, i.menu_item_id, i.quantity, i.unit_price, i.subtotal,
		       i.special_instructions, m.id, m.name
		FROM order_items i
		JOIN menu_items m ON m.id = i.menu_item_id
		WHERE i.order_id = ANY($1)
		ORDER BY i.id`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("order items: %w", err)
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		var sum models.MenuItemSummary
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity,
			&item.UnitPrice, &item.Subtotal, &item.SpecialInstructions,
			&sum.ID, &sum.Name); err != nil {
			return nil, err
		}
		item.MenuItem = &sum
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanOrder(rows pgx.Rows, o *models.Order) error {
	return rows.Scan(&o.ID, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.DeliveryAddress, &o.Notes, &o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt)
}

func orderWhere(status *string) (string, []any) {
	if status == nil {
		return "", nil
	}
	return "WHERE o.status = $1", []any{*status}
}
