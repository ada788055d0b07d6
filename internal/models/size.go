package models

// PartSize is a short size code (e.g. "M3", "0805"). The code is the whole record.
type PartSize struct {
	ID string `gorm:"primaryKey;size:4" json:"id" validate:"required,max=4"`
}

func (PartSize) TableName() string { return "sizes" }
