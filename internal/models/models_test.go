package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTableNames(t *testing.T) {
	tests := []struct {
		name  string
		model interface{ TableName() string }
		want  string
	}{
		{"category", Category{}, "categories"},
		{"size", PartSize{}, "sizes"},
		{"precision", Precision{}, "precisions"},
		{"unit", Unit{}, "units"},
		{"part", Part{}, "parts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.model.TableName(); got != tt.want {
				t.Errorf("TableName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPart_JSONShape(t *testing.T) {
	qty := int16(10)
	size := "M3"
	p := Part{
		ID:               4,
		CategoryID:       2,
		SizeID:           &size,
		Name:             "Bolt",
		Value:            decimal.NewNullDecimal(decimal.RequireFromString("2.5")),
		Quantity:         &qty,
		QuantityInUse:    3,
		QuantityNotInUse: 7,
	}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(b)
	for _, want := range []string{
		`"id":4`, `"categoryId":2`, `"sizeId":"M3"`, `"unitId":null`, `"precisionId":null`,
		`"value":2.5`, `"quantity":10`, `"quantityInUse":3`, `"quantityNotInUse":7`, `"comment":null`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("missing %s in %s", want, body)
		}
	}
	if strings.Contains(body, "Category") {
		t.Errorf("associations must not be serialised: %s", body)
	}
}

func TestUnit_DecodeNumberOrString(t *testing.T) {
	for _, in := range []string{`{"id":"k","multiplier":1000}`, `{"id":"k","multiplier":"1000"}`} {
		var u Unit
		if err := json.Unmarshal([]byte(in), &u); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if !u.Multiplier.Valid || !u.Multiplier.Decimal.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("multiplier = %v, want 1000", u.Multiplier)
		}
	}
	var u Unit
	if err := json.Unmarshal([]byte(`{"id":"k","multiplier":null}`), &u); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if u.Multiplier.Valid {
		t.Errorf("null multiplier decoded as valid")
	}
}
