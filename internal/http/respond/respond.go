// Package respond centralizes the JSON response and error shapes shared by
// every handler.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type errorBody struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// JSON writes v with the given status. Encoding failures are logged, not
// surfaced: the status line has already gone out.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes a JSON error body with the given status and message.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Message: message})
}

// ValidationError writes a 400 naming the first field that failed.
func ValidationError(w http.ResponseWriter, message, field string) {
	JSON(w, http.StatusBadRequest, errorBody{Message: message, Field: field})
}

// Internal writes a generic 500 and logs the underlying cause. Callers never
// see storage errors verbatim.
func Internal(w http.ResponseWriter, err error) {
	slog.Error("request failed", "error", err)
	Error(w, http.StatusInternalServerError, "internal error")
}
