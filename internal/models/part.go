package models

import "github.com/shopspring/decimal"

// Part is one inventory line.
//
// QuantityNotInUse is a stored generated column (quantity - quantity_in_use).
// It is read-only for gorm and ignored when sent by clients.
type Part struct {
	ID               int                 `gorm:"primaryKey" json:"id"`
	CategoryID       int                 `gorm:"not null;index" json:"categoryId" validate:"required"`
	SizeID           *string             `gorm:"size:4;index" json:"sizeId" validate:"omitempty,min=1,max=4"`
	UnitID           *string             `gorm:"size:4;index" json:"unitId" validate:"omitempty,min=1,max=4"`
	PrecisionID      *int                `gorm:"index" json:"precisionId"`
	Name             string              `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Value            decimal.NullDecimal `gorm:"type:numeric" json:"value"`
	Quantity         *int16              `gorm:"not null" json:"quantity" validate:"required"`
	QuantityInUse    int16               `gorm:"not null;default:0" json:"quantityInUse"`
	QuantityNotInUse int16               `gorm:"->;type:smallint GENERATED ALWAYS AS (quantity - quantity_in_use) STORED" json:"quantityNotInUse"`
	Comment          *string             `gorm:"size:1000" json:"comment" validate:"omitempty,max=1000"`

	// Foreign keys only; never loaded or written through the part.
	Category  *Category  `gorm:"foreignKey:CategoryID" json:"-" validate:"-"`
	Size      *PartSize  `gorm:"foreignKey:SizeID" json:"-" validate:"-"`
	Unit      *Unit      `gorm:"foreignKey:UnitID" json:"-" validate:"-"`
	Precision *Precision `gorm:"foreignKey:PrecisionID" json:"-" validate:"-"`
}

func (Part) TableName() string { return "parts" }
