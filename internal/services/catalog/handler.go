package catalog

import (
	"net/http"

	"github.com/gorilla/mux"

	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/web"
)

// Handler exposes the category and menu endpoints.
type Handler struct {
	service *Service
	logger  *logger.Logger
}

func NewHandler(service *Service, log *logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Register mounts the catalog routes. The slug route must be registered
// before the id route so "slug" is not captured as an id.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)
	r.HandleFunc("/categories/slug/{slug}", h.GetCategoryBySlug).Methods(http.MethodGet)
	r.HandleFunc("/categories/{id}", h.GetCategoryByID).Methods(http.MethodGet)
	r.HandleFunc("/menu", h.ListMenu).Methods(http.MethodGet)
	r.HandleFunc("/menu/{id}", h.GetMenuItem).Methods(http.MethodGet)
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		web.Error(w, h.logger, web.RequestID(r.Context()), err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (h *Handler) GetCategoryBySlug(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetCategoryBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		web.Error(w, h.logger, web.RequestID(r.Context()), err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"category": category})
}

func (h *Handler) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	category, err := h.service.GetCategoryByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		web.Error(w, h.logger, web.RequestID(r.Context()), err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"category": category})
}

func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	items, pagination, err := h.service.ListMenu(r.Context(), r.URL.Query())
	if err != nil {
		web.Error(w, h.logger, web.RequestID(r.Context()), err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{
		"menuItems":  items,
		"pagination": pagination,
	})
}

func (h *Handler) GetMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetMenuItem(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		web.Error(w, h.logger, web.RequestID(r.Context()), err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"menuItem": item})
}
