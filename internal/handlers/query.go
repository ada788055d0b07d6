package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/diewo77/parts-inventory/internal/validation"
)

// listParam collects a multi-valued query parameter. It accepts repeated keys
// (ids=1&ids=2), the bracket form (ids[]=1) and comma lists (ids=1,2).
// Blank items are dropped.
func listParam(q url.Values, key string) []string {
	var out []string
	for _, raw := range append(q[key], q[key+"[]"]...) {
		for _, item := range strings.Split(raw, ",") {
			if s := strings.TrimSpace(item); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// intListParam is listParam with every item parsed as an integer.
func intListParam(q url.Values, key string, v validation.Violations) []int {
	items := listParam(q, key)
	if len(items) == 0 {
		return nil
	}
	out := make([]int, 0, len(items))
	for _, s := range items {
		n, err := strconv.Atoi(s)
		if err != nil {
			v[key] = "invalid"
			return nil
		}
		out = append(out, n)
	}
	return out
}

// intParam parses an optional integer parameter; blank means absent.
func intParam(q url.Values, key string, v validation.Violations) *int {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		v[key] = "invalid"
		return nil
	}
	return &n
}

// decimalParam parses an optional decimal parameter; blank means absent.
func decimalParam(q url.Values, key string, v validation.Violations) *decimal.Decimal {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		v[key] = "invalid"
		return nil
	}
	return &d
}
