package services

import (
	"fmt"

	"catalog/internal/dto"
	"catalog/internal/repositories"
)

// CategoryService handles read access to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// FindAll retrieves all categories as DTOs.
func (s *CategoryService) FindAll() ([]dto.CategoryDTO, error) {
	categories, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	out := make([]dto.CategoryDTO, 0, len(categories))
	for i := range categories {
		out = append(out, dto.NewCategoryDTO(&categories[i]))
	}
	return out, nil
}
