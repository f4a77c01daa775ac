package reservation

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/models"
	"pizzeria-backend/internal/web"
)

// Handler exposes the reservation endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/reservations", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/reservations", h.List).Methods(http.MethodGet)
	r.HandleFunc("/reservations/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/reservations/{id}/status", h.UpdateStatus).Methods(http.MethodPatch)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestID(r.Context())

	var req models.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.BadRequest(w, "Invalid JSON body")
		return
	}

	res, err := h.service.Create(r.Context(), &req)
	if err != nil {
		web.Error(w, h.logger, requestID, err)
		return
	}

	web.JSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Reservation submitted. We will confirm shortly.",
		"reservation": map[string]any{
			"id":              res.ID,
			"guestName":       res.GuestName,
			"reservationDate": res.ReservationDate,
			"numberOfGuests":  res.NumberOfGuests,
			"status":          res.Status,
			"createdAt":       res.CreatedAt,
		},
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reservations, pagination, err := h.service.List(r.Context(), r.URL.Query())
	if err != nil {
		web.Error(w, h.logger, web.RequestID(r.Context()), err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{
		"reservations": reservations,
		"pagination":   pagination,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		web.Error(w, h.logger, web.RequestID(r.Context()), err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"reservation": res})
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	requestID := web.RequestID(r.Context())

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		web.BadRequest(w, "Invalid JSON body")
		return
	}

	res, err := h.service.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		web.Error(w, h.logger, requestID, err)
		return
	}

	web.JSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"reservation": res,
	})
}
