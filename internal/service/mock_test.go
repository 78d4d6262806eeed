package service

import (
	"context"

	"omnicalc/internal/domain"
)

// === Identity Store Mock ===

type mockIdentityStore struct {
	createAccountFn     func(ctx context.Context, params domain.NewAccountParams) (*domain.Account, error)
	deleteAccountFn     func(ctx context.Context, accountID string) error
	setClaimFn          func(ctx context.Context, accountID, name string, value bool) error
	listAccountsFn      func(ctx context.Context, limit int) ([]domain.Account, error)
	getAccountByEmailFn func(ctx context.Context, email string) (*domain.Account, error)
	updateDisplayNameFn func(ctx context.Context, accountID, displayName string) error
	verifyPasswordFn    func(ctx context.Context, accountID, password string) error
	touchLastSignInFn   func(ctx context.Context, accountID string) error
}

func (m *mockIdentityStore) CreateAccount(ctx context.Context, params domain.NewAccountParams) (*domain.Account, error) {
	if m.createAccountFn != nil {
		return m.createAccountFn(ctx, params)
	}
	panic("unexpected call to mockIdentityStore.CreateAccount")
}

func (m *mockIdentityStore) DeleteAccount(ctx context.Context, accountID string) error {
	if m.deleteAccountFn != nil {
		return m.deleteAccountFn(ctx, accountID)
	}
	panic("unexpected call to mockIdentityStore.DeleteAccount")
}

func (m *mockIdentityStore) SetClaim(ctx context.Context, accountID, name string, value bool) error {
	if m.setClaimFn != nil {
		return m.setClaimFn(ctx, accountID, name, value)
	}
	panic("unexpected call to mockIdentityStore.SetClaim")
}

func (m *mockIdentityStore) ListAccounts(ctx context.Context, limit int) ([]domain.Account, error) {
	if m.listAccountsFn != nil {
		return m.listAccountsFn(ctx, limit)
	}
	panic("unexpected call to mockIdentityStore.ListAccounts")
}

func (m *mockIdentityStore) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.getAccountByEmailFn != nil {
		return m.getAccountByEmailFn(ctx, email)
	}
	panic("unexpected call to mockIdentityStore.GetAccountByEmail")
}

func (m *mockIdentityStore) UpdateDisplayName(ctx context.Context, accountID, displayName string) error {
	if m.updateDisplayNameFn != nil {
		return m.updateDisplayNameFn(ctx, accountID, displayName)
	}
	panic("unexpected call to mockIdentityStore.UpdateDisplayName")
}

func (m *mockIdentityStore) VerifyPassword(ctx context.Context, accountID, password string) error {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(ctx, accountID, password)
	}
	panic("unexpected call to mockIdentityStore.VerifyPassword")
}

func (m *mockIdentityStore) TouchLastSignIn(ctx context.Context, accountID string) error {
	if m.touchLastSignInFn != nil {
		return m.touchLastSignInFn(ctx, accountID)
	}
	panic("unexpected call to mockIdentityStore.TouchLastSignIn")
}

// === Profile Store Mock ===

type mockProfileStore struct {
	putFn         func(ctx context.Context, profile *domain.Profile) error
	getFn         func(ctx context.Context, accountID string) (*domain.Profile, error)
	setFullNameFn func(ctx context.Context, accountID, fullName string) error
}

func (m *mockProfileStore) Put(ctx context.Context, profile *domain.Profile) error {
	if m.putFn != nil {
		return m.putFn(ctx, profile)
	}
	panic("unexpected call to mockProfileStore.Put")
}

func (m *mockProfileStore) Get(ctx context.Context, accountID string) (*domain.Profile, error) {
	if m.getFn != nil {
		return m.getFn(ctx, accountID)
	}
	panic("unexpected call to mockProfileStore.Get")
}

func (m *mockProfileStore) SetFullName(ctx context.Context, accountID, fullName string) error {
	if m.setFullNameFn != nil {
		return m.setFullNameFn(ctx, accountID, fullName)
	}
	panic("unexpected call to mockProfileStore.SetFullName")
}
