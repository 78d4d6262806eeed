package repository

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "omnicalc/internal/db"
	"omnicalc/internal/domain"
)

func setupProfileRepo(t *testing.T) *ProfileRepo {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)
	return NewProfileRepo(writeDB)
}

func TestProfileRepo_PutAndGet(t *testing.T) {
	repo := setupProfileRepo(t)
	ctx := context.Background()

	err := repo.Put(ctx, &domain.Profile{
		AccountID: "acct-1",
		Email:     "alice@example.com",
		FullName:  "Alice Smith",
		IsAdmin:   true,
	})
	require.NoError(t, err)

	p, err := repo.Get(ctx, "acct-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", p.FullName)
	assert.True(t, p.IsAdmin)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestProfileRepo_Get_NotFound(t *testing.T) {
	repo := setupProfileRepo(t)

	_, err := repo.Get(context.Background(), "missing")
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestProfileRepo_SetFullName(t *testing.T) {
	repo := setupProfileRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &domain.Profile{
		AccountID: "acct-2", Email: "bob@example.com", FullName: "Bob",
	}))

	require.NoError(t, repo.SetFullName(ctx, "acct-2", "Robert"))

	p, err := repo.Get(ctx, "acct-2")
	require.NoError(t, err)
	assert.Equal(t, "Robert", p.FullName)
	assert.False(t, p.IsAdmin) // untouched

	err = repo.SetFullName(ctx, "missing", "X")
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

