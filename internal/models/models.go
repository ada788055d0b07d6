// Package models holds the gorm-mapped records served by the API.
package models

import "github.com/shopspring/decimal"

func init() {
	// Decimals go out as JSON numbers, the way clients send them.
	decimal.MarshalJSONWithoutQuotes = true
}

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{&Category{}, &PartSize{}, &Unit{}, &Precision{}, &Part{}}
}
