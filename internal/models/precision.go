package models

import "github.com/shopspring/decimal"

// Precision is a tolerance value a part can reference (e.g. 0.01 for 1%).
type Precision struct {
	ID    int                 `gorm:"primaryKey" json:"id"`
	Value decimal.NullDecimal `gorm:"type:numeric" json:"value"`
}

func (Precision) TableName() string { return "precisions" }

// PrecisionInput is the request body of precision create/update.
type PrecisionInput struct {
	Value decimal.NullDecimal `json:"value"`
}
