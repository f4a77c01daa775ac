package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"pizzeria-backend/internal/apierr"
	"pizzeria-backend/internal/logger"
	"pizzeria-backend/internal/validation"
)

// JSON writes v as the JSON response body.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Error maps err onto the API error taxonomy and writes the response.
// Unexpected failures are logged with full detail server-side and answered
// with a generic message.
func Error(w http.ResponseWriter, log *logger.Logger, requestID string, err error) {
	var (
		validationErr *validation.Error
		notFoundErr   *apierr.NotFoundError
		conflictErr   *apierr.ConflictError
		statusErr     *apierr.InvalidStatusError
	)

	switch {
	case errors.As(err, &validationErr):
		JSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Validation failed",
			"details": validationErr.Fields,
		})
	case errors.As(err, &notFoundErr):
		JSON(w, http.StatusNotFound, map[string]any{
			"error": notFoundErr.Error(),
		})
	case errors.As(err, &conflictErr):
		JSON(w, http.StatusConflict, map[string]any{
			"error": conflictErr.Error(),
		})
	case errors.As(err, &statusErr):
		JSON(w, http.StatusBadRequest, map[string]any{
			"error":         "Invalid status",
			"validStatuses": statusErr.Valid,
		})
	default:
		log.Error("request_failed", "Unexpected error", requestID, err, nil)
		JSON(w, http.StatusInternalServerError, map[string]any{
			"error": "Internal server error",
		})
	}
}

// BadRequest writes a plain 400 with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, map[string]any{"error": message})
}
