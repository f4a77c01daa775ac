package order

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pizzeria-backend/internal/apierr"
	"pizzeria-backend/internal/models"
	"pizzeria-backend/internal/pricing"
	"pizzeria-backend/internal/query"
	"pizzeria-backend/internal/validation"
)

const defaultOrderLimit = 20

// Store is the storage collaborator for orders. Implementations map their
// own failure modes (missing rows, referential violations) onto the API
// error taxonomy.
type Store interface {
	CreateOrder(ctx context.Context, o *models.Order) error
	MenuItemSummaries(ctx context.Context, ids []string) (map[string]models.MenuItemSummary, error)
	CountOrders(ctx context.Context, status *string) (int, error)
	ListOrders(ctx context.Context, status *string, limit, offset int) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
}

// Service implements order intake and querying.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create validates the request, prices it, and persists the order with its
// items atomically. Validation and pricing resolve entirely before any
// persistence is attempted.
func (s *Service) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	lines := make([]pricing.Line, len(req.Items))
	for i, item := range req.Items {
		lines[i] = pricing.Line{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.Decimal,
		}
	}

	order := &models.Order{
		UserID:          req.UserID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		Status:          models.OrderPending,
		TotalAmount:     models.NewMoney(pricing.Total(lines)),
		Items:           make([]models.OrderItem, len(req.Items)),
	}
	for i, item := range req.Items {
		order.Items[i] = models.OrderItem{
			MenuItemID:          item.MenuItemID,
			Quantity:            item.Quantity,
			UnitPrice:           *item.UnitPrice,
			Subtotal:            models.NewMoney(pricing.Subtotal(lines[i])),
			SpecialInstructions: item.SpecialInstructions,
		}
	}

	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	if err := s.attachMenuSummaries(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) attachMenuSummaries(ctx context.Context, order *models.Order) error {
	ids := make([]string, len(order.Items))
	for i, item := range order.Items {
		ids[i] = item.MenuItemID
	}
	summaries, err := s.store.MenuItemSummaries(ctx, ids)
	if err != nil {
		return err
	}
	for i := range order.Items {
		if sum, ok := summaries[order.Items[i].MenuItemID]; ok {
			order.Items[i].MenuItem = &sum
		}
	}
	return nil
}

// List returns one page of orders, newest first, with an optional status
// filter. Count and page queries run concurrently.
func (s *Service) List(ctx context.Context, params url.Values) ([]models.Order, query.Pagination, error) {
	page := query.Page(params.Get("page"))
	limit := query.Limit(params.Get("limit"), defaultOrderLimit)

	var status *string
	if raw := params.Get("status"); raw != "" {
		status = &raw
	}

	var (
		total  int
		orders []models.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.store.CountOrders(gctx, status)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = s.store.ListOrders(gctx, status, limit, query.Offset(page, limit))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, query.Pagination{}, err
	}

	if orders == nil {
		orders = []models.Order{}
	}
	return orders, query.NewPagination(page, limit, total), nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Order, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apierr.NotFound("Order")
	}
	return s.store.GetOrder(ctx, id)
}

// UpdateStatus sets a new status after checking membership in the order
// status set. Any legal status may follow any other.
func (s *Service) UpdateStatus(ctx context.Context, id, raw string) (*models.Order, error) {
	status := models.OrderStatus(raw)
	if !status.Valid() {
		return nil, apierr.InvalidStatus(raw, models.ValidOrderStatuses())
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, apierr.NotFound("Order")
	}
	return s.store.UpdateStatus(ctx, id, status)
}
