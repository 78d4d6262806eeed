package app

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "omnicalc/internal/db"
	"omnicalc/internal/db/repository"
)

func TestSeedCatalog_IsIdempotent(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	repo := repository.NewCatalogRepo(writeDB)
	ctx := context.Background()

	require.NoError(t, seedCatalog(ctx, repo))

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 7)

	// Seeding again must not duplicate anything.
	require.NoError(t, seedCatalog(ctx, repo))
	categories, err = repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 7)

	finance, err := repo.ListCalculators(ctx, "finance")
	require.NoError(t, err)
	assert.Len(t, finance, 10)

	loan, err := repo.GetCalculator(ctx, "loan-calculator")
	require.NoError(t, err)
	assert.Equal(t, "Loan Calculator", loan.Name)
	assert.Equal(t, "finance", loan.CategorySlug)
}
