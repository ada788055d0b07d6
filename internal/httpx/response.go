// Package httpx writes JSON responses and decodes JSON request bodies.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every 4xx/5xx reply that carries one.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSON marshals payload and writes it with the given status. A nil payload is
// written as null. Marshal failures become a 500 with an encode_error body.
func JSON(w http.ResponseWriter, status int, payload any) {
	body := []byte("null")
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"encode_error"}`))
			return
		}
		body = b
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func JSONError(w http.ResponseWriter, status int, msg string, details any) {
	JSON(w, status, ErrorResponse{Error: msg, Details: details})
}

// Empty writes a bodiless response (204 after delete, 404 for a missing record).
func Empty(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}
