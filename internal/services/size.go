package services

import (
	"context"

	"github.com/diewo77/parts-inventory/internal/models"
	"github.com/diewo77/parts-inventory/internal/store"
)

const entitySize = "size"

type SizeService struct {
	repo store.SizeRepo
}

func NewSizeService(repo store.SizeRepo) *SizeService {
	return &SizeService{repo: repo}
}

// List returns all sizes sorted by id.
func (s *SizeService) List(ctx context.Context) ([]models.PartSize, error) {
	return s.repo.FindAll(ctx)
}

func (s *SizeService) Get(ctx context.Context, id string) (*models.PartSize, error) {
	ps, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, entitySize, id)
	}
	return ps, nil
}

// Create stores the size. Creating an existing id is a no-op.
func (s *SizeService) Create(ctx context.Context, ps models.PartSize) (*models.PartSize, error) {
	if err := s.repo.Save(ctx, &ps); err != nil {
		return nil, err
	}
	return &ps, nil
}

// Update renames oldID to newID in one transaction.
func (s *SizeService) Update(ctx context.Context, oldID, newID string) (*models.PartSize, error) {
	out := &models.PartSize{ID: newID}
	err := s.repo.Transaction(ctx, func(tx store.SizeRepo) error {
		ok, err := tx.Exists(ctx, oldID)
		if err := mustExist(ok, err, entitySize, oldID); err != nil {
			return err
		}
		if err := tx.Delete(ctx, oldID); err != nil {
			return err
		}
		return tx.Save(ctx, out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SizeService) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Exists(ctx, id)
	if err := mustExist(ok, err, entitySize, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
