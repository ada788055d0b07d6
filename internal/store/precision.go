package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/diewo77/parts-inventory/internal/models"
)

// PrecisionRepo is the data access contract for precisions.
type PrecisionRepo interface {
	FindAll(ctx context.Context) ([]models.Precision, error)
	FindByValue(ctx context.Context, value decimal.Decimal) ([]models.Precision, error)
	FindByID(ctx context.Context, id int) (*models.Precision, error)
	Exists(ctx context.Context, id int) (bool, error)
	Save(ctx context.Context, p *models.Precision) error
	// Update overwrites an existing row and returns ErrNotFound when there is none.
	Update(ctx context.Context, p *models.Precision) error
	Delete(ctx context.Context, id int) error
	Transaction(ctx context.Context, fn func(PrecisionRepo) error) error
}

// PrecisionStore implements PrecisionRepo with gorm.
type PrecisionStore struct {
	t table[models.Precision, int]
}

func NewPrecisionStore(db *gorm.DB) *PrecisionStore {
	return &PrecisionStore{t: table[models.Precision, int]{db: db, name: "precision", order: "value, id"}}
}

// FindAll returns every precision sorted by value.
func (s *PrecisionStore) FindAll(ctx context.Context) ([]models.Precision, error) {
	return s.t.find(ctx, "")
}

// FindByValue returns the precisions whose value equals value.
func (s *PrecisionStore) FindByValue(ctx context.Context, value decimal.Decimal) ([]models.Precision, error) {
	return s.t.find(ctx, "value = ?", value)
}

func (s *PrecisionStore) FindByID(ctx context.Context, id int) (*models.Precision, error) {
	return s.t.findByID(ctx, id)
}

func (s *PrecisionStore) Exists(ctx context.Context, id int) (bool, error) {
	return s.t.exists(ctx, id)
}

func (s *PrecisionStore) Save(ctx context.Context, p *models.Precision) error {
	if err := s.t.conn(ctx).Omit(clause.Associations).Save(p).Error; err != nil {
		return errors.Wrap(err, "save precision")
	}
	return nil
}

func (s *PrecisionStore) Update(ctx context.Context, p *models.Precision) error {
	return s.t.update(ctx, p)
}

func (s *PrecisionStore) Delete(ctx context.Context, id int) error {
	return s.t.deleteByID(ctx, id)
}

func (s *PrecisionStore) Transaction(ctx context.Context, fn func(PrecisionRepo) error) error {
	return s.t.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewPrecisionStore(tx))
	})
}
