package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/diewo77/parts-inventory/internal/models"
)

// SizeRepo is the data access contract for part sizes.
type SizeRepo interface {
	FindAll(ctx context.Context) ([]models.PartSize, error)
	FindByID(ctx context.Context, id string) (*models.PartSize, error)
	Exists(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context, s *models.PartSize) error
	Delete(ctx context.Context, id string) error
	// Transaction runs fn against a repository bound to a single transaction.
	Transaction(ctx context.Context, fn func(SizeRepo) error) error
}

// SizeStore implements SizeRepo with gorm.
type SizeStore struct {
	t table[models.PartSize, string]
}

func NewSizeStore(db *gorm.DB) *SizeStore {
	return &SizeStore{t: table[models.PartSize, string]{db: db, name: "size", order: "id"}}
}

// FindAll returns every size sorted by id.
func (s *SizeStore) FindAll(ctx context.Context) ([]models.PartSize, error) {
	return s.t.find(ctx, "")
}

func (s *SizeStore) FindByID(ctx context.Context, id string) (*models.PartSize, error) {
	return s.t.findByID(ctx, id)
}

func (s *SizeStore) Exists(ctx context.Context, id string) (bool, error) {
	return s.t.exists(ctx, id)
}

// Save inserts the size; an existing id is left as is.
func (s *SizeStore) Save(ctx context.Context, ps *models.PartSize) error {
	err := s.t.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(ps).Error
	if err != nil {
		return errors.Wrap(err, "save size")
	}
	return nil
}

func (s *SizeStore) Delete(ctx context.Context, id string) error {
	return s.t.deleteByID(ctx, id)
}

func (s *SizeStore) Transaction(ctx context.Context, fn func(SizeRepo) error) error {
	return s.t.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewSizeStore(tx))
	})
}
