package repository

import (
	"context"
	"database/sql"

	"omnicalc/internal/domain"
)

// CatalogRepo is the SQLite implementation of domain.CatalogRepository.
type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) ListCategories(ctx context.Context) ([]domain.CalculatorCategory, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT slug, name, description, sort_order FROM calculator_categories ORDER BY sort_order, slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.CalculatorCategory
	for rows.Next() {
		var c domain.CalculatorCategory
		if err := rows.Scan(&c.Slug, &c.Name, &c.Description, &c.SortOrder); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CatalogRepo) ListCalculators(ctx context.Context, categorySlug string) ([]domain.Calculator, error) {
	query := `SELECT slug, name, description, category_slug, sort_order FROM calculators`
	args := []any{}
	if categorySlug != "" {
		query += ` WHERE category_slug = ?`
		args = append(args, categorySlug)
	}
	query += ` ORDER BY sort_order, slug`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calculators []domain.Calculator
	for rows.Next() {
		var c domain.Calculator
		if err := rows.Scan(&c.Slug, &c.Name, &c.Description, &c.CategorySlug, &c.SortOrder); err != nil {
			return nil, err
		}
		calculators = append(calculators, c)
	}
	return calculators, rows.Err()
}

func (r *CatalogRepo) GetCalculator(ctx context.Context, slug string) (*domain.Calculator, error) {
	var c domain.Calculator
	err := r.db.QueryRowContext(ctx,
		`SELECT slug, name, description, category_slug, sort_order FROM calculators WHERE slug = ?`,
		slug).Scan(&c.Slug, &c.Name, &c.Description, &c.CategorySlug, &c.SortOrder)
	if err != nil {
		return nil, mapDBError(err)
	}
	return &c, nil
}

func (r *CatalogRepo) PutCategory(ctx context.Context, c domain.CalculatorCategory) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calculator_categories (slug, name, description, sort_order) VALUES (?, ?, ?, ?)
		 ON CONFLICT (slug) DO UPDATE SET
		   name = excluded.name, description = excluded.description, sort_order = excluded.sort_order`,
		c.Slug, c.Name, c.Description, c.SortOrder)
	return err
}

func (r *CatalogRepo) PutCalculator(ctx context.Context, c domain.Calculator) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calculators (slug, name, description, category_slug, sort_order) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (slug) DO UPDATE SET
		   name = excluded.name, description = excluded.description,
		   category_slug = excluded.category_slug, sort_order = excluded.sort_order`,
		c.Slug, c.Name, c.Description, c.CategorySlug, c.SortOrder)
	return err
}
