package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/diewo77/parts-inventory/internal/models"
)

// UnitRepo is the data access contract for units.
type UnitRepo interface {
	FindAll(ctx context.Context) ([]models.Unit, error)
	FindByIDContains(ctx context.Context, id string) ([]models.Unit, error)
	FindByMultiplier(ctx context.Context, m decimal.Decimal) ([]models.Unit, error)
	FindByID(ctx context.Context, id string) (*models.Unit, error)
	Exists(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context, u *models.Unit) error
	Delete(ctx context.Context, id string) error
	// Transaction runs fn against a repository bound to a single transaction.
	Transaction(ctx context.Context, fn func(UnitRepo) error) error
}

// UnitStore implements UnitRepo with gorm.
type UnitStore struct {
	t table[models.Unit, string]
}

func NewUnitStore(db *gorm.DB) *UnitStore {
	return &UnitStore{t: table[models.Unit, string]{db: db, name: "unit", order: "id"}}
}

// FindAll returns every unit sorted by id.
func (s *UnitStore) FindAll(ctx context.Context) ([]models.Unit, error) {
	return s.t.find(ctx, "")
}

// FindByIDContains matches id case-insensitively, sorted by id.
func (s *UnitStore) FindByIDContains(ctx context.Context, id string) ([]models.Unit, error) {
	return s.t.find(ctx, "LOWER(id) LIKE ?", containsPattern(id))
}

func (s *UnitStore) FindByMultiplier(ctx context.Context, m decimal.Decimal) ([]models.Unit, error) {
	return s.t.find(ctx, "multiplier = ?", m)
}

func (s *UnitStore) FindByID(ctx context.Context, id string) (*models.Unit, error) {
	return s.t.findByID(ctx, id)
}

func (s *UnitStore) Exists(ctx context.Context, id string) (bool, error) {
	return s.t.exists(ctx, id)
}

// Save inserts the unit or overwrites the multiplier of an existing id.
func (s *UnitStore) Save(ctx context.Context, u *models.Unit) error {
	err := s.t.conn(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(u).Error
	if err != nil {
		return errors.Wrap(err, "save unit")
	}
	return nil
}

func (s *UnitStore) Delete(ctx context.Context, id string) error {
	return s.t.deleteByID(ctx, id)
}

func (s *UnitStore) Transaction(ctx context.Context, fn func(UnitRepo) error) error {
	return s.t.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewUnitStore(tx))
	})
}
