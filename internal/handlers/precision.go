package handlers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/diewo77/parts-inventory/internal/httpx"
	"github.com/diewo77/parts-inventory/internal/models"
	"github.com/diewo77/parts-inventory/internal/services"
)

type PrecisionHandler struct {
	svc *services.PrecisionService
}

func NewPrecisionHandler(svc *services.PrecisionService) *PrecisionHandler {
	return &PrecisionHandler{svc: svc}
}

func (h *PrecisionHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /precisions", h.List)
	mux.HandleFunc("GET /precisions/{id}", h.Get)
	mux.HandleFunc("POST /precisions", h.Create)
	mux.HandleFunc("PUT /precisions/{id}", h.Update)
	mux.HandleFunc("DELETE /precisions/{id}", h.Delete)
}

// List answers GET /precisions, filtered by ?value= when given.
// A value that is not a number matches nothing.
func (h *PrecisionHandler) List(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("value"))
	if raw == "" {
		out, err := h.svc.List(r.Context())
		if err != nil {
			fail(w, r, err)
			return
		}
		httpx.JSON(w, http.StatusOK, out)
		return
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		httpx.JSON(w, http.StatusOK, []models.Precision{})
		return
	}
	out, err := h.svc.FindByValue(r.Context(), value)
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *PrecisionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *PrecisionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.PrecisionInput
	if !decode(w, r, &in) {
		return
	}
	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, p)
}

func (h *PrecisionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.PrecisionInput
	if !decode(w, r, &in) {
		return
	}
	p, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

func (h *PrecisionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		fail(w, r, err)
		return
	}
	httpx.Empty(w, http.StatusNoContent)
}
