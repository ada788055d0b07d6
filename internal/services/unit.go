package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/diewo77/parts-inventory/internal/models"
	"github.com/diewo77/parts-inventory/internal/store"
)

const entityUnit = "unit"

type UnitService struct {
	repo store.UnitRepo
}

func NewUnitService(repo store.UnitRepo) *UnitService {
	return &UnitService{repo: repo}
}

// List returns all units sorted by id.
func (s *UnitService) List(ctx context.Context) ([]models.Unit, error) {
	return s.repo.FindAll(ctx)
}

// Search returns the units whose id contains id, ignoring case.
// A blank id lists everything.
func (s *UnitService) Search(ctx context.Context, id string) ([]models.Unit, error) {
	if strings.TrimSpace(id) == "" {
		return s.List(ctx)
	}
	return s.repo.FindByIDContains(ctx, id)
}

func (s *UnitService) FindByMultiplier(ctx context.Context, m decimal.Decimal) ([]models.Unit, error) {
	return s.repo.FindByMultiplier(ctx, m)
}

func (s *UnitService) Get(ctx context.Context, id string) (*models.Unit, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, entityUnit, id)
	}
	return u, nil
}

// Create stores u, overwriting the multiplier when the id already exists.
func (s *UnitService) Create(ctx context.Context, u models.Unit) (*models.Unit, error) {
	if err := s.repo.Save(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Update replaces unit oldID with u in one transaction. When u.ID differs
// the old row is removed; a u.ID that already exists is overwritten.
func (s *UnitService) Update(ctx context.Context, oldID string, u models.Unit) (*models.Unit, error) {
	err := s.repo.Transaction(ctx, func(tx store.UnitRepo) error {
		ok, err := tx.Exists(ctx, oldID)
		if err := mustExist(ok, err, entityUnit, oldID); err != nil {
			return err
		}
		if u.ID != oldID {
			if err := tx.Delete(ctx, oldID); err != nil {
				return err
			}
		}
		return tx.Save(ctx, &u)
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UnitService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err := mustExist(ok, err, entityUnit, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
