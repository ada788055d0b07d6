package services

import (
	"context"

	"github.com/diewo77/parts-inventory/internal/models"
	"github.com/diewo77/parts-inventory/internal/store"
)

const entityPart = "part"

type PartService struct {
	repo store.PartRepo
}

func NewPartService(repo store.PartRepo) *PartService {
	return &PartService{repo: repo}
}

// List returns all parts sorted by name.
func (s *PartService) List(ctx context.Context) ([]models.Part, error) {
	return s.repo.FindAll(ctx)
}

// Search returns the parts matching every criterion set in q, sorted by name.
func (s *PartService) Search(ctx context.Context, q PartSearch) ([]models.Part, error) {
	f, err := q.Filter()
	if err != nil {
		return nil, err
	}
	return s.repo.Find(ctx, f)
}

func (s *PartService) Get(ctx context.Context, id int) (*models.Part, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, entityPart, id)
	}
	return p, nil
}

// Create stores p under a new id. quantityNotInUse comes back from the database.
func (s *PartService) Create(ctx context.Context, p models.Part) (*models.Part, error) {
	p.ID = 0
	if err := s.repo.Save(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update replaces part id with p; the id in p is ignored.
func (s *PartService) Update(ctx context.Context, id int, p models.Part) (*models.Part, error) {
	p.ID = id
	err := s.repo.Transaction(ctx, func(tx store.PartRepo) error {
		ok, err := tx.Exists(ctx, id)
		if err := mustExist(ok, err, entityPart, id); err != nil {
			return err
		}
		return translate(tx.Update(ctx, &p), entityPart, id)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PartService) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.Exists(ctx, id)
	if err := mustExist(ok, err, entityPart, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
