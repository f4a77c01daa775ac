package order

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/models"
	"pizzeria-backend/internal/web"
)

// Handler exposes the order endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/orders", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/orders", h.List).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/orders/{id}/status", h.UpdateStatus).Methods(http.MethodPatch)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestID(r.Context())

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.BadRequest(w, "Invalid JSON body")
		return
	}

	order, err := h.service.Create(r.Context(), &req)
	if err != nil {
		web.Error(w, h.logger, requestID, err)
		return
	}

	h.logger.Debug("order_created", "Order placed", requestID, map[string]any{
		"order_id":     order.ID,
		"total_amount": order.TotalAmount.StringFixed(2),
		"item_count":   len(order.Items),
	})

	web.JSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Order placed successfully",
		"order": map[string]any{
			"id":          order.ID,
			"status":      order.Status,
			"totalAmount": order.TotalAmount,
			"createdAt":   order.CreatedAt,
			"orderItems":  order.Items,
		},
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	orders, pagination, err := h.service.List(r.Context(), r.URL.Query())
	if err != nil {
		web.Error(w, h.logger, web.RequestID(r.Context()), err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{
		"orders":     orders,
		"pagination": pagination,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		web.Error(w, h.logger, web.RequestID(r.Context()), err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"order": order})
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestID(r.Context())

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.BadRequest(w, "Invalid JSON body")
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		web.Error(w, h.logger, requestID, err)
		return
	}

	web.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"order":   order,
	})
}
