package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/diewo77/parts-inventory/internal/models"
)

// CategoryRepo is the data access contract for categories.
type CategoryRepo interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByNameContains(ctx context.Context, name string) ([]models.Category, error)
	FindByID(ctx context.Context, id int) (*models.Category, error)
	Exists(ctx context.Context, id int) (bool, error)
	Save(ctx context.Context, c *models.Category) error
	// Update overwrites an existing row and returns ErrNotFound when there is none.
	Update(ctx context.Context, c *models.Category) error
	Delete(ctx context.Context, id int) error
	Transaction(ctx context.Context, fn func(CategoryRepo) error) error
}

// CategoryStore implements CategoryRepo with gorm.
type CategoryStore struct {
	t table[models.Category, int]
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{t: table[models.Category, int]{db: db, name: "category", order: "name, id"}}
}

// FindAll returns every category sorted by name.
func (s *CategoryStore) FindAll(ctx context.Context) ([]models.Category, error) {
	return s.t.find(ctx, "")
}

// FindByNameContains matches name case-insensitively, sorted by name.
func (s *CategoryStore) FindByNameContains(ctx context.Context, name string) ([]models.Category, error) {
	return s.t.find(ctx, "LOWER(name) LIKE ?", containsPattern(name))
}

func (s *CategoryStore) FindByID(ctx context.Context, id int) (*models.Category, error) {
	return s.t.findByID(ctx, id)
}

func (s *CategoryStore) Exists(ctx context.Context, id int) (bool, error) {
	return s.t.exists(ctx, id)
}

// Save inserts c when its id is zero and replaces the row otherwise.
func (s *CategoryStore) Save(ctx context.Context, c *models.Category) error {
	if err := s.t.conn(ctx).Omit(clause.Associations).Save(c).Error; err != nil {
		return errors.Wrap(err, "save category")
	}
	return nil
}

func (s *CategoryStore) Update(ctx context.Context, c *models.Category) error {
	return s.t.update(ctx, c)
}

func (s *CategoryStore) Delete(ctx context.Context, id int) error {
	return s.t.deleteByID(ctx, id)
}

func (s *CategoryStore) Transaction(ctx context.Context, fn func(CategoryRepo) error) error {
	return s.t.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewCategoryStore(tx))
	})
}
