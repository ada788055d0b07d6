package handlers

import (
	"net/http"

	"github.com/diewo77/parts-inventory/internal/httpx"
	"github.com/diewo77/parts-inventory/internal/models"
	"github.com/diewo77/parts-inventory/internal/services"
)

type SizeHandler struct {
	svc *services.SizeService
}

func NewSizeHandler(svc *services.SizeService) *SizeHandler {
	return &SizeHandler{svc: svc}
}

func (h *SizeHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /sizes", h.List)
	mux.HandleFunc("POST /sizes", h.Create)
	mux.HandleFunc("PUT /sizes/{id}", h.Update)
	mux.HandleFunc("DELETE /sizes/{id}", h.Delete)
}

func (h *SizeHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.svc.List(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *SizeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.PartSize
	if !decode(w, r, &in) {
		return
	}
	ps, err := h.svc.Create(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, ps)
}

// Update renames the size in the path to the id in the body.
func (h *SizeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.PartSize
	if !decode(w, r, &in) {
		return
	}
	ps, err := h.svc.Update(r.Context(), r.PathValue("id"), in.ID)
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ps)
}

func (h *SizeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		fail(w, r, err)
		return
	}
	httpx.Empty(w, http.StatusNoContent)
}
