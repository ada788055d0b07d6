// Package handlers exposes the JSON REST API over the services.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/diewo77/parts-inventory/internal/httpx"
	"github.com/diewo77/parts-inventory/internal/logging"
	"github.com/diewo77/parts-inventory/internal/services"
	"github.com/diewo77/parts-inventory/internal/validation"
)

// pathID parses the {id} path value as an integer, answering 400 when it is not one.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return 0, false
	}
	return id, true
}

// decode reads the JSON body into dst and checks its validate tags.
// It answers 400 and returns false on failure.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := httpx.DecodeJSON(r, dst); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return false
	}
	if v := validation.Struct(dst); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return false
	}
	return true
}

// fail maps a service error to a response: 404 without body for a missing
// record, 500 otherwise.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrNotFound) {
		httpx.Empty(w, http.StatusNotFound)
		return
	}
	logging.FromContext(r.Context()).
		WithError(err).
		WithField("path", r.URL.Path).
		Error("request failed")
	httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
}
