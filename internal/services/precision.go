package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/diewo77/parts-inventory/internal/models"
	"github.com/diewo77/parts-inventory/internal/store"
)

const entityPrecision = "precision"

type PrecisionService struct {
	repo store.PrecisionRepo
}

func NewPrecisionService(repo store.PrecisionRepo) *PrecisionService {
	return &PrecisionService{repo: repo}
}

// List returns all precisions sorted by value.
func (s *PrecisionService) List(ctx context.Context) ([]models.Precision, error) {
	return s.repo.FindAll(ctx)
}

// FindByValue returns the precisions equal to value.
func (s *PrecisionService) FindByValue(ctx context.Context, value decimal.Decimal) ([]models.Precision, error) {
	return s.repo.FindByValue(ctx, value)
}

func (s *PrecisionService) Get(ctx context.Context, id int) (*models.Precision, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, entityPrecision, id)
	}
	return p, nil
}

func (s *PrecisionService) Create(ctx context.Context, in models.PrecisionInput) (*models.Precision, error) {
	p := &models.Precision{Value: in.Value}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PrecisionService) Update(ctx context.Context, id int, in models.PrecisionInput) (*models.Precision, error) {
	p := &models.Precision{ID: id, Value: in.Value}
	err := s.repo.Transaction(ctx, func(tx store.PrecisionRepo) error {
		ok, err := tx.Exists(ctx, id)
		if err := mustExist(ok, err, entityPrecision, id); err != nil {
			return err
		}
		return translate(tx.Update(ctx, p), entityPrecision, id)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PrecisionService) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.Exists(ctx, id)
	if err := mustExist(ok, err, entityPrecision, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
