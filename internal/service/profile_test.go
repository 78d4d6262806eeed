package service

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "omnicalc/internal/db"
	"omnicalc/internal/db/repository"
	"omnicalc/internal/domain"
)

func setupProfileService(t *testing.T) (*ProfileService, *ProvisionService, *repository.IdentityRepo) {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)
	identity := repository.NewIdentityRepo(writeDB)
	profiles := repository.NewProfileRepo(writeDB)
	return NewProfileService(identity, profiles),
		NewProvisionService(identity, profiles, testLogger),
		identity
}

func TestProfileService_UpdateFullName(t *testing.T) {
	svc, provision, identity := setupProfileService(t)
	ctx := context.Background()

	uid, err := provision.CreateAccount(ctx, adminRequest("admin@x.com"))
	require.NoError(t, err)

	require.NoError(t, svc.UpdateFullName(ctx, uid, "New Name"))

	// Both stores reflect the change; the admin flag is untouched.
	profile, err := svc.Get(ctx, uid)
	require.NoError(t, err)
	assert.Equal(t, "New Name", profile.FullName)
	assert.True(t, profile.IsAdmin)

	account, err := identity.GetAccountByEmail(ctx, "admin@x.com")
	require.NoError(t, err)
	assert.Equal(t, "New Name", account.DisplayName)
	assert.True(t, account.IsAdmin())
}

func TestProfileService_UpdateFullName_Validation(t *testing.T) {
	svc, _, _ := setupProfileService(t)

	err := svc.UpdateFullName(context.Background(), "some-id", "   ")
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestProfileService_UpdateFullName_UnknownAccount(t *testing.T) {
	svc, _, _ := setupProfileService(t)

	err := svc.UpdateFullName(context.Background(), "missing", "Name")
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestProfileService_ListAccounts(t *testing.T) {
	svc, provision, _ := setupProfileService(t)
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com"} {
		_, err := provision.CreateAccount(ctx, userRequest(email))
		require.NoError(t, err)
	}

	accounts, err := svc.ListAccounts(ctx, 1000)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}
