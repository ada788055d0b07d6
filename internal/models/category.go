package models

// Category groups parts (e.g. "Resistors", "Bolts").
// Name uniqueness is not enforced by the schema.
type Category struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50" json:"name" validate:"required,max=50"`
}

func (Category) TableName() string { return "categories" }

// CategoryInput is the request body of category create/update: only the mutable field.
type CategoryInput struct {
	Name string `json:"name" validate:"required,max=50"`
}
