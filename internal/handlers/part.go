package handlers

import (
	"net/http"

	"github.com/diewo77/parts-inventory/internal/httpx"
	"github.com/diewo77/parts-inventory/internal/models"
	"github.com/diewo77/parts-inventory/internal/services"
	"github.com/diewo77/parts-inventory/internal/validation"
)

type PartHandler struct {
	svc *services.PartService
}

func NewPartHandler(svc *services.PartService) *PartHandler {
	return &PartHandler{svc: svc}
}

func (h *PartHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /parts", h.List)
	mux.HandleFunc("GET /parts/{id}", h.Get)
	mux.HandleFunc("POST /parts", h.Create)
	mux.HandleFunc("PUT /parts/{id}", h.Update)
	mux.HandleFunc("DELETE /parts/{id}", h.Delete)
}

// List answers GET /parts. Every query parameter given narrows the result.
func (h *PartHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := make(validation.Violations)
	search := services.PartSearch{
		CategoryIDs: intListParam(q, "categoryIds", v),
		SizeIDs:     listParam(q, "sizeIds"),
		UnitIDs:     listParam(q, "unitIds"),
		PrecisionID: intParam(q, "precisionId", v),
		Name:        q.Get("name"),
		Value:       decimalParam(q, "value", v),
		Comment:     q.Get("comment"),
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_query", v)
		return
	}
	out, err := h.svc.Search(r.Context(), search)
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *PartHandler) Get(w http.ResponseWriter, r *http.Request) {
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

func (h *PartHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.Part
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

// Update replaces part {id} with the body; an id inside the body is ignored.
func (h *PartHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.Part
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

func (h *PartHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
