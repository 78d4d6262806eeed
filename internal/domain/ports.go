package domain

import "context"

// IdentityStore owns account records and their claims. The Provisioning
// Service treats it as an external collaborator: no transaction spans it and
// the ProfileStore, so every multi-step flow compensates on failure instead
// of relying on shared atomicity.
type IdentityStore interface {
	// CreateAccount creates an account with the given credentials and returns
	// it. Returns a ConflictError when the email is already registered
	// (case-insensitive).
	CreateAccount(ctx context.Context, params NewAccountParams) (*Account, error)

	// DeleteAccount removes an account and its claims. Used only as a
	// compensating rollback action.
	DeleteAccount(ctx context.Context, accountID string) error

	// SetClaim sets a boolean claim on an account. Setting the admin claim is
	// a conditional write: the store rejects a second true admin claim with a
	// ConflictError.
	SetClaim(ctx context.Context, accountID, name string, value bool) error

	// ListAccounts returns up to limit accounts with their claims.
	ListAccounts(ctx context.Context, limit int) ([]Account, error)

	// GetAccountByEmail looks up an account by email, case-insensitively.
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)

	// UpdateDisplayName changes an account's display name.
	UpdateDisplayName(ctx context.Context, accountID, displayName string) error

	// VerifyPassword checks a credential against the stored hash. Returns an
	// AccessDeniedError when they do not match.
	VerifyPassword(ctx context.Context, accountID, password string) error

	// TouchLastSignIn records a successful sign-in time.
	TouchLastSignIn(ctx context.Context, accountID string) error
}

// ProfileStore holds one denormalized profile document per account,
// independent of the IdentityStore.
type ProfileStore interface {
	// Put writes the profile record for an account. CreatedAt is assigned by
	// the store.
	Put(ctx context.Context, profile *Profile) error

	// Get returns the profile for an account.
	Get(ctx context.Context, accountID string) (*Profile, error)

	// SetFullName updates only the full name. Never touches IsAdmin.
	SetFullName(ctx context.Context, accountID, fullName string) error
}

// CatalogRepository provides the calculator catalog metadata.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]CalculatorCategory, error)
	ListCalculators(ctx context.Context, categorySlug string) ([]Calculator, error)
	GetCalculator(ctx context.Context, slug string) (*Calculator, error)
	PutCategory(ctx context.Context, c CalculatorCategory) error
	PutCalculator(ctx context.Context, c Calculator) error
}
