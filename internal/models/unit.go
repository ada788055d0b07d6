package models

import "github.com/shopspring/decimal"

// Unit is a measurement unit keyed by its short symbol (e.g. "kOhm")
// with the multiplier relative to the base unit.
type Unit struct {
	ID         string              `gorm:"primaryKey;size:4" json:"id" validate:"required,max=4"`
	Multiplier decimal.NullDecimal `gorm:"type:numeric" json:"multiplier"`
}

func (Unit) TableName() string { return "units" }
