package models

import "time"

// OrderStatus represents the status of an order.
type OrderStatus string

const (
	OrderPending        OrderStatus = "PENDING"
	OrderConfirmed      OrderStatus = "CONFIRMED"
	OrderPreparing      OrderStatus = "PREPARING"
	OrderReady          OrderStatus = "READY"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

// ValidOrderStatuses lists every status an order may be set to. Transitions
// are unrestricted: any member may follow any other.
func ValidOrderStatuses() []string {
	return []string{
		string(OrderPending), string(OrderConfirmed), string(OrderPreparing),
		string(OrderReady), string(OrderOutForDelivery), string(OrderDelivered),
		string(OrderCancelled),
	}
}

// Valid reports whether s is a member of the order status set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady,
		OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order is a customer order. TotalAmount equals the sum of its items'
// subtotals at creation time.
type Order struct {
	ID              string      `json:"id"`
	UserID          *string     `json:"userId"`
	CustomerName    *string     `json:"customerName"`
	CustomerEmail   *string     `json:"customerEmail"`
	CustomerPhone   *string     `json:"customerPhone"`
	DeliveryAddress *string     `json:"deliveryAddress"`
	Notes           *string     `json:"notes"`
	Status          OrderStatus `json:"status"`
	TotalAmount     Money       `json:"totalAmount"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	Items           []OrderItem `json:"orderItems"`

	User *UserSummary `json:"user,omitempty"`
}

// OrderItem is one line of an order. UnitPrice is the price snapshot taken
// at order time; Subtotal is always the exact product of UnitPrice and
// Quantity.
type OrderItem struct {
	ID                  string  `json:"id"`
	OrderID             string  `json:"orderId"`
	MenuItemID          string  `json:"menuItemId"`
	Quantity            int     `json:"quantity"`
	UnitPrice           Money   `json:"unitPrice"`
	Subtotal            Money   `json:"subtotal"`
	SpecialInstructions *string `json:"specialInstructions"`

	MenuItem *MenuItemSummary `json:"menuItem,omitempty"`
}

// CreateOrderRequest is the POST /api/orders payload.
type CreateOrderRequest struct {
	UserID          *string                  `json:"userId" validate:"omitempty,uuid"`
	CustomerName    *string                  `json:"customerName" validate:"omitempty,min=1,max=100"`
	CustomerEmail   *string                  `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone   *string                  `json:"customerPhone" validate:"omitempty,max=30"`
	DeliveryAddress *string                  `json:"deliveryAddress" validate:"omitempty,max=500"`
	Notes           *string                  `json:"notes" validate:"omitempty,max=1000"`
	Items           []CreateOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateOrderItemRequest is one requested order line. UnitPrice is accepted
// from the client and persisted verbatim as the historical price snapshot;
// it is not cross-checked against the current catalog price.
type CreateOrderItemRequest struct {
	MenuItemID          string  `json:"menuItemId" validate:"required,uuid"`
	Quantity            int     `json:"quantity" validate:"required,min=1,max=99"`
	UnitPrice           *Money  `json:"unitPrice" validate:"required,gte=0"`
	SpecialInstructions *string `json:"specialInstructions" validate:"omitempty,max=500"`
}

// UpdateStatusRequest is the body of every PATCH :id/status endpoint.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
