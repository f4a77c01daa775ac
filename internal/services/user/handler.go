package user

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/models"
	"pizzeria-backend/internal/web"
)

// Handler exposes the user endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/users", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/users", h.List).Methods(http.MethodGet)
	r.HandleFunc("/users/{id}", h.Get).Methods(http.MethodGet)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestID(r.Context())

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.BadRequest(w, "Invalid JSON body")
		return
	}

	u, err := h.service.Create(r.Context(), &req)
	if err != nil {
		web.Error(w, h.logger, requestID, err)
		return
	}

	web.JSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"user": map[string]any{
			"id":        u.ID,
			"email":     u.Email,
			"name":      u.Name,
			"phone":     u.Phone,
			"address":   u.Address,
			"createdAt": u.CreatedAt,
		},
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, pagination, err := h.service.List(r.Context(), r.URL.Query())
	if err != nil {
		web.Error(w, h.logger, web.RequestID(r.Context()), err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{
		"users":      users,
		"pagination": pagination,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		web.Error(w, h.logger, web.RequestID(r.Context()), err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"user": u})
}
