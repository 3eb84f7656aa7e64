package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lwestin/daytrip/internal/domain"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON serializes v to w with the given status code. Encoding failures
// are logged rather than surfaced: the status line is already committed.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeNotFound returns 404 with the supplied human-readable message
// (e.g. "trip not found") because the handler is the layer that knows what
// was being looked up.
func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}})
}

// writeValidation returns 422 with the message extracted from the wrapped
// domain.ErrValidation error.
func writeValidation(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}})
}

// writeBadRequest returns 422 for a request rejected before reaching the
// service layer (e.g. missing or malformed body, bad path parameter).
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}})
}

// writeServiceError maps a service-layer error onto the API error surface:
// domain.ErrNotFound becomes 404, domain.ErrValidation becomes 422, anything
// else becomes an opaque 500.
func writeServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeNotFound(w, notFoundMessage)
	case errors.Is(err, domain.ErrValidation):
		writeValidation(w, err)
	default:
		slog.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}})
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.TripService.Create: validation error: name is required" → "name is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}
