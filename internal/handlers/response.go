package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the standard JSON error body. Result is only set when a
// failure has a display value of its own, such as "NaN" for division by zero.
type ErrorResponse struct {
	Error  string `json:"error"`
	Result string `json:"result,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes a standardised JSON error response.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteErrorResponse(w, status, ErrorResponse{Error: msg})
}

// WriteErrorResponse writes body as a JSON error response.
func WriteErrorResponse(w http.ResponseWriter, status int, body ErrorResponse) {
	WriteJSON(w, status, body)
}
