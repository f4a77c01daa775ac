package web

import (
	"context"
	"net/http"
	"time"

	"pizzeria-backend/internal/database"
)

// Health reports process and database liveness.
func Health(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := "ok"
		code := http.StatusOK
		if err := db.Ping(ctx); err != nil {
			status = "unhealthy"
			code = http.StatusServiceUnavailable
		}

		JSON(w, code, map[string]any{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
