package service

import (
	"context"

	"github.com/grachmannico95/fintrack-be/internal/domain"
	"github.com/grachmannico95/fintrack-be/pkg/logger"
)

type CategoryService interface {
	List(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error)
}

type categoryService struct {
	repo   domain.CategoryRepository
	logger *logger.Logger
}

func NewCategoryService(repo domain.CategoryRepository, log *logger.Logger) CategoryService {
	return &categoryService{
		repo:   repo,
		logger: log,
	}
}

func (s *categoryService) List(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx, categoryType)
	if err != nil {
		s.logger.Error(ctx, "Failed to list categories",
			"error", err,
		)
		return nil, err
	}
	return categories, nil
}
