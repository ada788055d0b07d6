package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/diewo77/parts-inventory/internal/models"
)

func seedPartsAPI(t *testing.T, h http.Handler) {
	t.Helper()
	for _, n := range []string{"Fasteners", "Electronics", "Tools"} {
		if w := do(t, h, http.MethodPost, "/categories", `{"name":"`+n+`"}`); w.Code != http.StatusCreated {
			t.Fatalf("seed category: %d", w.Code)
		}
	}
	parts := []string{
		`{"categoryId":1,"name":"Hex bolt","sizeId":"M5","quantity":10,"quantityInUse":3,"comment":"Zinc plated"}`,
		`{"categoryId":2,"name":"Bolt terminal","unitId":"mm","quantity":4,"value":2.5}`,
		`{"categoryId":3,"name":"Bolt cutter","precisionId":1,"quantity":1}`,
		`{"categoryId":1,"name":"Washer","sizeId":"M4","quantity":100}`,
	}
	for _, p := range parts {
		if w := do(t, h, http.MethodPost, "/parts", p); w.Code != http.StatusCreated {
			t.Fatalf("seed part %s: %d %s", p, w.Code, w.Body.String())
		}
	}
}

func names(ps []models.Part) string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return strings.Join(out, "|")
}

func TestPartHandler_Search(t *testing.T) {
	mux, _ := newMux(t)
	seedPartsAPI(t, mux)

	tests := []struct {
		query string
		want  string
	}{
		{"", "Bolt cutter|Bolt terminal|Hex bolt|Washer"},
		{"?name=&comment=%20", "Bolt cutter|Bolt terminal|Hex bolt|Washer"},
		{"?categoryIds=1&categoryIds=2&name=bolt", "Bolt terminal|Hex bolt"},
		{"?categoryIds[]=1&categoryIds[]=3", "Bolt cutter|Hex bolt|Washer"},
		{"?categoryIds=1,3&name=BOLT", "Bolt cutter|Hex bolt"},
		{"?sizeIds=M4,M5", "Hex bolt|Washer"},
		{"?unitIds=mm", "Bolt terminal"},
		{"?precisionId=1", "Bolt cutter"},
		{"?value=2.50", "Bolt terminal"},
		{"?comment=zinc", "Hex bolt"},
		{"?categoryIds=3&sizeIds=M5", ""},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := do(t, mux, http.MethodGet, "/parts"+tt.query, "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
			}
			if got := names(decodeBody[[]models.Part](t, w)); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestPartHandler_BadQuery(t *testing.T) {
	mux, _ := newMux(t)
	for _, q := range []string{"?categoryIds=a", "?categoryIds=1,x", "?precisionId=one", "?value=abc"} {
		w := do(t, mux, http.MethodGet, "/parts"+q, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400 got %d", q, w.Code)
		}
		if !strings.Contains(w.Body.String(), "invalid_query") {
			t.Fatalf("%s: unexpected body %s", q, w.Body.String())
		}
	}
}

func TestPartHandler_QuantityNotInUse(t *testing.T) {
	mux, _ := newMux(t)
	if w := do(t, mux, http.MethodPost, "/categories", `{"name":"Fasteners"}`); w.Code != http.StatusCreated {
		t.Fatalf("seed: %d", w.Code)
	}

	w := do(t, mux, http.MethodPost, "/parts", `{"id":77,"categoryId":1,"name":"Nut","quantity":10,"quantityInUse":3,"quantityNotInUse":1000}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	created := decodeBody[models.Part](t, w)
	if created.ID == 77 || created.QuantityNotInUse != 7 {
		t.Fatalf("unexpected created part: %+v", created)
	}

	id := strconv.Itoa(created.ID)
	w = do(t, mux, http.MethodGet, "/parts/"+id, "")
	got := decodeBody[models.Part](t, w)
	if got.QuantityNotInUse != 7 || got.Name != "Nut" || *got.Quantity != 10 {
		t.Fatalf("unexpected part: %+v", got)
	}

	w = do(t, mux, http.MethodPut, "/parts/"+id, `{"id":500,"categoryId":1,"name":"Nut M3","quantity":10,"quantityInUse":3,"quantityNotInUse":-4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: %d %s", w.Code, w.Body.String())
	}
	updated := decodeBody[models.Part](t, w)
	if updated.ID != created.ID || updated.QuantityNotInUse != 7 || updated.Name != "Nut M3" {
		t.Fatalf("unexpected updated part: %+v", updated)
	}
	if w := do(t, mux, http.MethodGet, "/parts/500", ""); w.Code != http.StatusNotFound {
		t.Fatalf("body id must not be used: %d", w.Code)
	}
}

func TestPartHandler_Errors(t *testing.T) {
	mux, _ := newMux(t)
	tests := []struct {
		name, method, target, body string
		want                       int
	}{
		{"get missing", http.MethodGet, "/parts/1", "", http.StatusNotFound},
		{"update missing", http.MethodPut, "/parts/1", `{"categoryId":1,"name":"x","quantity":1}`, http.StatusNotFound},
		{"delete missing", http.MethodDelete, "/parts/1", "", http.StatusNotFound},
		{"bad id", http.MethodDelete, "/parts/x", "", http.StatusBadRequest},
		{"missing name", http.MethodPost, "/parts", `{"categoryId":1,"quantity":1}`, http.StatusBadRequest},
		{"missing quantity", http.MethodPost, "/parts", `{"categoryId":1,"name":"x"}`, http.StatusBadRequest},
		{"missing category", http.MethodPost, "/parts", `{"name":"x","quantity":1}`, http.StatusBadRequest},
		{"size too long", http.MethodPost, "/parts", `{"categoryId":1,"name":"x","quantity":1,"sizeId":"12345"}`, http.StatusBadRequest},
		{"bad value", http.MethodPost, "/parts", `{"categoryId":1,"name":"x","quantity":1,"value":"abc"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, mux, tt.method, tt.target, tt.body)
			if w.Code != tt.want {
				t.Fatalf("expected %d got %d (%s)", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestPartHandler_DeleteThenGet(t *testing.T) {
	mux, _ := newMux(t)
	seedPartsAPI(t, mux)
	if w := do(t, mux, http.MethodDelete, "/parts/2", ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", w.Code)
	}
	if w := do(t, mux, http.MethodGet, "/parts/2", ""); w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: %d", w.Code)
	}
}
