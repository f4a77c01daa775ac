package contact

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/models"
	"pizzeria-backend/internal/web"
)

// Handler exposes the contact form endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/contact", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/contact", h.List).Methods(http.MethodGet)
	r.HandleFunc("/contact/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/contact/{id}/status", h.UpdateStatus).Methods(http.MethodPatch)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestID(r.Context())

	var req models.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.BadRequest(w, "Invalid JSON body")
		return
	}

	c, err := h.service.Create(r.Context(), &req)
	if err != nil {
		web.Error(w, h.logger, requestID, err)
		return
	}

	web.JSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Thank you for your message. We will get back to you soon!",
		"contact": map[string]any{
			"id":        c.ID,
			"name":      c.Name,
			"email":     c.Email,
			"createdAt": c.CreatedAt,
		},
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	contacts, pagination, err := h.service.List(r.Context(), r.URL.Query())
	if err != nil {
		web.Error(w, h.logger, web.RequestID(r.Context()), err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{
		"contacts":   contacts,
		"pagination": pagination,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		web.Error(w, h.logger, web.RequestID(r.Context()), err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"contact": c})
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestID(r.Context())

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.BadRequest(w, "Invalid JSON body")
		return
	}

	c, err := h.service.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		web.Error(w, h.logger, requestID, err)
		return
	}

	web.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"contact": c,
	})
}
