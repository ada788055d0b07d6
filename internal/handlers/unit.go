package handlers

import (
	"net/http"
	"strings"

	"github.com/diewo77/parts-inventory/internal/httpx"
	"github.com/diewo77/parts-inventory/internal/models"
	"github.com/diewo77/parts-inventory/internal/services"
)

type UnitHandler struct {
	svc *services.UnitService
}

func NewUnitHandler(svc *services.UnitService) *UnitHandler {
	return &UnitHandler{svc: svc}
}

func (h *UnitHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /units", h.List)
	mux.HandleFunc("POST /units", h.Create)
	mux.HandleFunc("PUT /units/{id}", h.Update)
	mux.HandleFunc("DELETE /units/{id}", h.Delete)
}

// List answers GET /units, filtered by an ?id= substring when given.
func (h *UnitHandler) List(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	var (
		out []models.Unit
		err error
	)
	if id == "" {
		out, err = h.svc.List(r.Context())
	} else {
		out, err = h.svc.Search(r.Context(), id)
	}
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *UnitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.Unit
	if !decode(w, r, &in) {
		return
	}
	u, err := h.svc.Create(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, u)
}

// Update replaces the unit in the path with the body, renaming it when the ids differ.
func (h *UnitHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in models.Unit
	if !decode(w, r, &in) {
		return
	}
	u, err := h.svc.Update(r.Context(), r.PathValue("id"), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, u)
}

func (h *UnitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		fail(w, r, err)
		return
	}
	httpx.Empty(w, http.StatusNoContent)
}
