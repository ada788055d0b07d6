package handlers

import (
	"net/http"
	"strings"

	"github.com/diewo77/parts-inventory/internal/httpx"
	"github.com/diewo77/parts-inventory/internal/models"
	"github.com/diewo77/parts-inventory/internal/services"
)

type CategoryHandler struct {
	svc *services.CategoryService
}

func NewCategoryHandler(svc *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories", h.List)
	mux.HandleFunc("GET /categories/{id}", h.Get)
	mux.HandleFunc("POST /categories", h.Create)
	mux.HandleFunc("PUT /categories/{id}", h.Update)
	mux.HandleFunc("DELETE /categories/{id}", h.Delete)
}

// List answers GET /categories, filtered by ?name= when given.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	var (
		out []models.Category
		err error
	)
	if name == "" {
		out, err = h.svc.List(r.Context())
	} else {
		out, err = h.svc.Search(r.Context(), name)
	}
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CategoryInput
	if !decode(w, r, &in) {
		return
	}
	c, err := h.svc.Create(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, c)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.CategoryInput
	if !decode(w, r, &in) {
		return
	}
	c, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, c)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
