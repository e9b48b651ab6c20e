package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"stock-api/internal/model"

	"github.com/rs/zerolog"
)

// MessageResponse is the error and confirmation body shape used across
// the API.
type MessageResponse struct {
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, MessageResponse{Message: message})
}

// writeServiceError maps a service failure onto the HTTP error taxonomy.
// Domain errors carry a client-safe message; anything else is logged and
// surfaced as a generic 500.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, statusForCode(domainErr.Code), domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Msg("unexpected service error")
	writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "Server error"})
}

// statusForCode maps domain error codes to HTTP status codes. Invalid
// credentials are a 400 to match the login contract, not a 401; only
// token failures are 401.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeValidation, model.ErrCodeConflict, model.ErrCodeInvalidCredentials:
		return http.StatusBadRequest
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
