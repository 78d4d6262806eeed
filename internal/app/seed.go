package app

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"omnicalc/internal/domain"
)

//go:embed calculators.yaml
var catalogFixture []byte

type seedCategory struct {
	Slug        string `yaml:"slug"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type seedCalculator struct {
	Slug        string `yaml:"slug"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

type seedFixture struct {
	Categories  []seedCategory   `yaml:"categories"`
	Calculators []seedCalculator `yaml:"calculators"`
}

// seedCatalog loads the embedded calculator catalog into the repository.
// Upserts keyed by slug, so re-running on an existing database is a no-op
// apart from refreshing names and descriptions.
func seedCatalog(ctx context.Context, repo domain.CatalogRepository) error {
	var fixture seedFixture
	if err := yaml.Unmarshal(catalogFixture, &fixture); err != nil {
		return fmt.Errorf("parse catalog fixture: %w", err)
	}

	for i, cat := range fixture.Categories {
		err := repo.PutCategory(ctx, domain.CalculatorCategory{
			Slug:        cat.Slug,
			Name:        cat.Name,
			Description: cat.Description,
			SortOrder:   i + 1,
		})
		if err != nil {
			return fmt.Errorf("seed category %s: %w", cat.Slug, err)
		}
	}

	order := make(map[string]int, len(fixture.Categories))
	for _, c := range fixture.Calculators {
		order[c.Category]++
		err := repo.PutCalculator(ctx, domain.Calculator{
			Slug:         c.Slug,
			Name:         c.Name,
			Description:  c.Description,
			CategorySlug: c.Category,
			SortOrder:    order[c.Category],
		})
		if err != nil {
			return fmt.Errorf("seed calculator %s: %w", c.Slug, err)
		}
	}
	return nil
}
