package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "omnicalc/internal/db"
	"omnicalc/internal/db/repository"
	"omnicalc/internal/domain"
)

var testLogger = slog.New(slog.DiscardHandler)

func setupProvision(t *testing.T) (*ProvisionService, *repository.IdentityRepo, *repository.ProfileRepo) {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)
	identity := repository.NewIdentityRepo(writeDB)
	profiles := repository.NewProfileRepo(writeDB)
	return NewProvisionService(identity, profiles, testLogger), identity, profiles
}

func userRequest(email string) domain.RegistrationRequest {
	return domain.RegistrationRequest{
		Email:    email,
		Password: "secret1",
		FullName: "A",
		Role:     domain.RoleUser,
	}
}

func adminRequest(email string) domain.RegistrationRequest {
	r := userRequest(email)
	r.Role = domain.RoleAdmin
	return r
}

func TestCreateAccount_UserOnEmptyStore(t *testing.T) {
	svc, identity, profiles := setupProvision(t)
	ctx := context.Background()

	uid, err := svc.CreateAccount(ctx, userRequest("a@x.com"))
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	account, err := identity.GetAccountByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, uid, account.ID)
	assert.False(t, account.IsAdmin())

	profile, err := profiles.Get(ctx, uid)
	require.NoError(t, err)
	assert.False(t, profile.IsAdmin)
	assert.Equal(t, "a@x.com", profile.Email)
	assert.Equal(t, "A", profile.FullName)
}

func TestCreateAccount_AdminOnEmptyStore(t *testing.T) {
	svc, identity, profiles := setupProvision(t)
	ctx := context.Background()

	uid, err := svc.CreateAccount(ctx, adminRequest("admin@x.com"))
	require.NoError(t, err)

	account, err := identity.GetAccountByEmail(ctx, "admin@x.com")
	require.NoError(t, err)
	assert.True(t, account.IsAdmin())

	profile, err := profiles.Get(ctx, uid)
	require.NoError(t, err)
	assert.True(t, profile.IsAdmin)

	assert.True(t, svc.AdminExists(ctx))
}

func TestCreateAccount_SecondAdminRejected(t *testing.T) {
	svc, identity, profiles := setupProvision(t)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, adminRequest("first@x.com"))
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, adminRequest("second@x.com"))
	require.Error(t, err)
	var accessDenied *domain.AccessDeniedError
	assert.ErrorAs(t, err, &accessDenied)

	// No trace of the rejected request survives.
	_, err = identity.GetAccountByEmail(ctx, "second@x.com")
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	accounts, err := identity.ListAccounts(ctx, 1000)
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	admins := 0
	for _, a := range accounts {
		if a.IsAdmin() {
			admins++
			_, err := profiles.Get(ctx, a.ID)
			require.NoError(t, err)
		}
	}
	assert.Equal(t, 1, admins)
}

func TestCreateAccount_ConcurrentAdminRegistrations(t *testing.T) {
	svc, identity, profiles := setupProvision(t)
	ctx := context.Background()

	const racers = 8
	uids := make([]string, racers)
	errs := make([]error, racers)

	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			uids[i], errs[i] = svc.CreateAccount(ctx, adminRequest(fmt.Sprintf("racer%d@x.com", i)))
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := 0; i < racers; i++ {
		if errs[i] == nil {
			winners++
			assert.NotEmpty(t, uids[i])
			continue
		}
		var accessDenied *domain.AccessDeniedError
		assert.ErrorAs(t, errs[i], &accessDenied, "racer %d", i)
	}
	require.Equal(t, 1, winners)

	// Losers leave no trace: one account, one admin claim, one profile.
	accounts, err := identity.ListAccounts(ctx, 1000)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.True(t, accounts[0].IsAdmin())

	profile, err := profiles.Get(ctx, accounts[0].ID)
	require.NoError(t, err)
	assert.True(t, profile.IsAdmin)
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	svc, identity, _ := setupProvision(t)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, userRequest("a@x.com"))
	require.NoError(t, err)

	_, err = svc.CreateAccount(ctx, userRequest("a@x.com"))
	require.Error(t, err)
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)

	accounts, err := identity.ListAccounts(ctx, 1000)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestCreateAccount_ProfileWriteFailureRollsBack(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	identity := repository.NewIdentityRepo(writeDB)
	profiles := &mockProfileStore{
		putFn: func(context.Context, *domain.Profile) error {
			return errors.New("profile store unreachable")
		},
	}
	svc := NewProvisionService(identity, profiles, testLogger)
	ctx := context.Background()

	_, err := svc.CreateAccount(ctx, adminRequest("admin@x.com"))
	require.Error(t, err)
	var accessDenied *domain.AccessDeniedError
	var conflict *domain.ConflictError
	var validation *domain.ValidationError
	assert.False(t, errors.As(err, &accessDenied) || errors.As(err, &conflict) || errors.As(err, &validation),
		"profile write failure must surface as internal, got %v", err)

	// Full rollback: account and claim are gone.
	accounts, listErr := identity.ListAccounts(ctx, 1000)
	require.NoError(t, listErr)
	assert.Empty(t, accounts)
	assert.False(t, svc.AdminExists(ctx))

	// A retry against a working profile store succeeds.
	svc = NewProvisionService(identity, repository.NewProfileRepo(writeDB), testLogger)
	_, err = svc.CreateAccount(ctx, adminRequest("admin@x.com"))
	require.NoError(t, err)
}

func TestCreateAccount_Validation(t *testing.T) {
	svc, _, _ := setupProvision(t)
	ctx := context.Background()

	for name, req := range map[string]domain.RegistrationRequest{
		"empty email":    {Password: "secret1", FullName: "A"},
		"empty password": {Email: "a@x.com", FullName: "A"},
		"empty name":     {Email: "a@x.com", Password: "secret1"},
		"bad email":      {Email: "not-an-email", Password: "secret1", FullName: "A"},
		"bad role":       {Email: "a@x.com", Password: "secret1", FullName: "A", Role: "owner"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateAccount(ctx, req)
			require.Error(t, err)
			var validation *domain.ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

func TestCreateAccount_RoleDefaultsToUser(t *testing.T) {
	svc, _, profiles := setupProvision(t)
	ctx := context.Background()

	uid, err := svc.CreateAccount(ctx, domain.RegistrationRequest{
		Email: "plain@x.com", Password: "secret1", FullName: "Plain",
	})
	require.NoError(t, err)

	profile, err := profiles.Get(ctx, uid)
	require.NoError(t, err)
	assert.False(t, profile.IsAdmin)
}

func TestAdminExists_ConservativeOnListFailure(t *testing.T) {
	identity := &mockIdentityStore{
		listAccountsFn: func(context.Context, int) ([]domain.Account, error) {
			return nil, errors.New("store unreachable")
		},
	}
	svc := NewProvisionService(identity, &mockProfileStore{}, testLogger)

	assert.True(t, svc.AdminExists(context.Background()))

	// The conservative answer also blocks an admin registration outright,
	// before any account is created.
	_, err := svc.CreateAccount(context.Background(), adminRequest("admin@x.com"))
	require.Error(t, err)
	var accessDenied *domain.AccessDeniedError
	assert.ErrorAs(t, err, &accessDenied)
}

func TestCreateAccount_ClaimRaceLoserRollsBack(t *testing.T) {
	// Simulates losing the race: the pre-check and re-check see no other
	// admin, but the conditional claim write reports the claim already held.
	deleted := ""
	identity := &mockIdentityStore{
		listAccountsFn: func(context.Context, int) ([]domain.Account, error) {
			return []domain.Account{{ID: "self", Email: "admin@x.com"}}, nil
		},
		createAccountFn: func(_ context.Context, params domain.NewAccountParams) (*domain.Account, error) {
			return &domain.Account{ID: "self", Email: params.Email, Claims: map[string]bool{}}, nil
		},
		setClaimFn: func(context.Context, string, string, bool) error {
			return domain.ErrConflict("claim \"admin\" is already held by another account")
		},
		deleteAccountFn: func(_ context.Context, accountID string) error {
			deleted = accountID
			return nil
		},
	}
	svc := NewProvisionService(identity, &mockProfileStore{}, testLogger)

	_, err := svc.CreateAccount(context.Background(), adminRequest("admin@x.com"))
	require.Error(t, err)
	var accessDenied *domain.AccessDeniedError
	assert.ErrorAs(t, err, &accessDenied)
	assert.Equal(t, "self", deleted)
}

func TestCreateAccount_ReCheckExcludesSelf(t *testing.T) {
	// The just-created account shows up in a fresh listing. The re-check must
	// not count it as an existing admin (it has no claim yet anyway, but the
	// exclusion also covers stores that list claims eventually).
	claimSet := false
	identity := &mockIdentityStore{
		listAccountsFn: func(context.Context, int) ([]domain.Account, error) {
			accounts := []domain.Account{{ID: "self", Email: "admin@x.com"}}
			if claimSet {
				accounts[0].Claims = map[string]bool{domain.ClaimAdmin: true}
			}
			return accounts, nil
		},
		createAccountFn: func(_ context.Context, params domain.NewAccountParams) (*domain.Account, error) {
			return &domain.Account{ID: "self", Email: params.Email, Claims: map[string]bool{}}, nil
		},
		setClaimFn: func(context.Context, string, string, bool) error {
			claimSet = true
			return nil
		},
	}
	profiles := &mockProfileStore{
		putFn: func(context.Context, *domain.Profile) error { return nil },
	}
	svc := NewProvisionService(identity, profiles, testLogger)

	uid, err := svc.CreateAccount(context.Background(), adminRequest("admin@x.com"))
	require.NoError(t, err)
	assert.Equal(t, "self", uid)
	assert.True(t, claimSet)
}
