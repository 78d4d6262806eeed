package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "omnicalc/internal/db"
	"omnicalc/internal/db/repository"
	"omnicalc/internal/domain"
)

var testSecret = []byte("test-secret")

func setupAuth(t *testing.T) (*AuthService, *ProvisionService) {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)
	identity := repository.NewIdentityRepo(writeDB)
	profiles := repository.NewProfileRepo(writeDB)
	return NewAuthService(identity, testSecret, testLogger),
		NewProvisionService(identity, profiles, testLogger)
}

func TestAuthService_SignIn(t *testing.T) {
	auth, provision := setupAuth(t)
	ctx := context.Background()

	uid, err := provision.CreateAccount(ctx, adminRequest("admin@x.com"))
	require.NoError(t, err)

	tokenStr, session, err := auth.SignIn(ctx, "admin@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, uid, session.AccountID)
	assert.True(t, session.IsAdmin)

	// The token verifies with the shared secret and carries the admin claim.
	token, err := jwt.Parse(tokenStr, func(*jwt.Token) (interface{}, error) {
		return testSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, uid, claims["sub"])
	assert.Equal(t, true, claims["admin"])
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	auth, provision := setupAuth(t)
	ctx := context.Background()

	_, err := provision.CreateAccount(ctx, userRequest("a@x.com"))
	require.NoError(t, err)

	_, _, err = auth.SignIn(ctx, "a@x.com", "not-the-password")
	require.Error(t, err)
	var accessDenied *domain.AccessDeniedError
	assert.ErrorAs(t, err, &accessDenied)
	assert.Equal(t, "invalid email or password", err.Error())
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	auth, _ := setupAuth(t)

	_, _, err := auth.SignIn(context.Background(), "nobody@x.com", "secret1")
	require.Error(t, err)
	var accessDenied *domain.AccessDeniedError
	assert.ErrorAs(t, err, &accessDenied)
	// Indistinguishable from a wrong password.
	assert.Equal(t, "invalid email or password", err.Error())
}

func TestAuthService_SignIn_EmptyInput(t *testing.T) {
	auth, _ := setupAuth(t)

	_, _, err := auth.SignIn(context.Background(), "", "")
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestAuthService_SignIn_RecordsLastSignIn(t *testing.T) {
	writeDB, _ := internaldb.OpenTestSQLite(t)
	identity := repository.NewIdentityRepo(writeDB)
	profiles := repository.NewProfileRepo(writeDB)
	auth := NewAuthService(identity, testSecret, testLogger)
	provision := NewProvisionService(identity, profiles, testLogger)
	ctx := context.Background()

	_, err := provision.CreateAccount(ctx, userRequest("a@x.com"))
	require.NoError(t, err)

	_, _, err = auth.SignIn(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	account, err := identity.GetAccountByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, account.LastSignInAt)
}
