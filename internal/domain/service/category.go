package service

import (
	"context"

	"github.com/clubsphere/backend/internal/domain/entity"
	"github.com/clubsphere/backend/internal/ports/secondary"
)

type CategoryService struct {
	repo secondary.CategoryRepository
}

func NewCategoryService(storage secondary.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: storage,
	}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]entity.Category, error) {
	return s.repo.GetAll(ctx)
}
