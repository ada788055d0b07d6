// Package services holds the business rules between handlers and the store.
package services

import (
	"context"
	"strings"

	"github.com/diewo77/parts-inventory/internal/models"
	"github.com/diewo77/parts-inventory/internal/store"
)

const entityCategory = "category"

type CategoryService struct {
	repo store.CategoryRepo
}

func NewCategoryService(repo store.CategoryRepo) *CategoryService {
	return &CategoryService{repo: repo}
}

// List returns all categories sorted by name.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.FindAll(ctx)
}

// Search returns the categories whose name contains name, ignoring case.
// A blank name lists everything.
func (s *CategoryService) Search(ctx context.Context, name string) ([]models.Category, error) {
	if strings.TrimSpace(name) == "" {
		return s.List(ctx)
	}
	return s.repo.FindByNameContains(ctx, name)
}

func (s *CategoryService) Get(ctx context.Context, id int) (*models.Category, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, entityCategory, id)
	}
	return c, nil
}

// Create stores a new category; the id is assigned by the database.
func (s *CategoryService) Create(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	c := &models.Category{Name: in.Name}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the name of category id. A missing row is never recreated.
func (s *CategoryService) Update(ctx context.Context, id int, in models.CategoryInput) (*models.Category, error) {
	c := &models.Category{ID: id, Name: in.Name}
	err := s.repo.Transaction(ctx, func(tx store.CategoryRepo) error {
		ok, err := tx.Exists(ctx, id)
		if err := mustExist(ok, err, entityCategory, id); err != nil {
			return err
		}
		return translate(tx.Update(ctx, c), entityCategory, id)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.Exists(ctx, id)
	if err := mustExist(ok, err, entityCategory, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
