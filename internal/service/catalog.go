package service

import (
	"context"

	"omnicalc/internal/domain"
)

// CatalogService serves the calculator catalog to the UI shell.
type CatalogService struct {
	repo domain.CatalogRepository
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(repo domain.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// Categories returns all catalog categories in display order.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.CalculatorCategory, error) {
	return s.repo.ListCategories(ctx)
}

// Calculators returns the calculators in a category, or all of them when
// categorySlug is empty.
func (s *CatalogService) Calculators(ctx context.Context, categorySlug string) ([]domain.Calculator, error) {
	return s.repo.ListCalculators(ctx, categorySlug)
}

// Calculator looks up one calculator by slug.
func (s *CatalogService) Calculator(ctx context.Context, slug string) (*domain.Calculator, error) {
	if slug == "" {
		return nil, domain.ErrValidation("calculator slug is required")
	}
	return s.repo.GetCalculator(ctx, slug)
}
