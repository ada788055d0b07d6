package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/diewo77/parts-inventory/internal/models"
)

// PartRepo is the data access contract for parts.
type PartRepo interface {
	FindAll(ctx context.Context) ([]models.Part, error)
	Find(ctx context.Context, f Filter) ([]models.Part, error)
	FindByID(ctx context.Context, id int) (*models.Part, error)
	Exists(ctx context.Context, id int) (bool, error)
	Save(ctx context.Context, p *models.Part) error
	// Update overwrites an existing row and returns ErrNotFound when there is none.
	Update(ctx context.Context, p *models.Part) error
	Delete(ctx context.Context, id int) error
	Transaction(ctx context.Context, fn func(PartRepo) error) error
}

// PartStore implements PartRepo with gorm.
type PartStore struct {
	t table[models.Part, int]
}

func NewPartStore(db *gorm.DB) *PartStore {
	return &PartStore{t: table[models.Part, int]{db: db, name: "part", order: "name, id"}}
}

// FindAll returns every part sorted by name.
func (s *PartStore) FindAll(ctx context.Context) ([]models.Part, error) {
	return s.t.find(ctx, "")
}

// Find returns the parts matching f, sorted by name.
func (s *PartStore) Find(ctx context.Context, f Filter) ([]models.Part, error) {
	if f.IsEmpty() {
		return s.FindAll(ctx)
	}
	return s.t.find(ctx, f.SQL, f.Args...)
}

func (s *PartStore) FindByID(ctx context.Context, id int) (*models.Part, error) {
	return s.t.findByID(ctx, id)
}

func (s *PartStore) Exists(ctx context.Context, id int) (bool, error) {
	return s.t.exists(ctx, id)
}

// Save inserts or replaces p, then reloads it so the generated
// quantity_not_in_use column is current.
func (s *PartStore) Save(ctx context.Context, p *models.Part) error {
	if err := s.t.conn(ctx).Omit(clause.Associations).Save(p).Error; err != nil {
		return errors.Wrap(err, "save part")
	}
	return s.reload(ctx, p)
}

// Update overwrites the existing row p.ID and reloads p.
func (s *PartStore) Update(ctx context.Context, p *models.Part) error {
	if err := s.t.update(ctx, p); err != nil {
		return err
	}
	return s.reload(ctx, p)
}

func (s *PartStore) reload(ctx context.Context, p *models.Part) error {
	fresh, err := s.t.findByID(ctx, p.ID)
	if err != nil {
		return errors.Wrap(err, "reload part")
	}
	*p = *fresh
	return nil
}

func (s *PartStore) Delete(ctx context.Context, id int) error {
	return s.t.deleteByID(ctx, id)
}

func (s *PartStore) Transaction(ctx context.Context, fn func(PartRepo) error) error {
	return s.t.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewPartStore(tx))
	})
}
