package validation

import (
	"strings"
	"testing"

	"github.com/diewo77/parts-inventory/internal/models"
)

func TestStruct_Valid(t *testing.T) {
	if v := Struct(models.CategoryInput{Name: "Resistors"}); v != nil {
		t.Fatalf("expected no violations, got %v", v)
	}
}

func TestStruct_Violations(t *testing.T) {
	long := strings.Repeat("x", 5)
	empty := ""
	tests := []struct {
		name  string
		in    any
		field string
		want  string
	}{
		{"category name required", models.CategoryInput{}, "name", "required"},
		{"category name too long", models.CategoryInput{Name: strings.Repeat("a", 51)}, "name", "too_long"},
		{"size id too long", models.PartSize{ID: long}, "id", "too_long"},
		{"unit id required", models.Unit{}, "id", "required"},
		{"part quantity required", models.Part{CategoryID: 1, Name: "Bolt"}, "quantity", "required"},
		{"part category required", models.Part{Name: "Bolt"}, "categoryId", "required"},
		{"part size id too short", models.Part{CategoryID: 1, Name: "Bolt", SizeID: &empty}, "sizeId", "too_short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Struct(tt.in)
			if v.Empty() {
				t.Fatalf("expected violations")
			}
			if got := v[tt.field]; got != tt.want {
				t.Errorf("v[%q] = %q, want %q (all: %v)", tt.field, got, tt.want, v)
			}
		})
	}
}
