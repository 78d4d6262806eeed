package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"omnicalc/internal/domain"
)

// minPasswordLength is the credential policy enforced by the store.
const minPasswordLength = 6

// IdentityRepo is the SQLite implementation of domain.IdentityStore. Accounts
// and their claims live in the accounts / account_claims tables; the admin
// claim is guarded by a partial unique index so that setting it is a true
// conditional write.
type IdentityRepo struct {
	db *sql.DB
}

func NewIdentityRepo(db *sql.DB) *IdentityRepo {
	return &IdentityRepo{db: db}
}

func (r *IdentityRepo) CreateAccount(ctx context.Context, params domain.NewAccountParams) (*domain.Account, error) {
	if len(params.Password) < minPasswordLength {
		return nil, domain.ErrValidation("password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:          uuid.NewString(),
		Email:       params.Email,
		DisplayName: params.DisplayName,
		Claims:      map[string]bool{},
		CreatedAt:   time.Now().UTC(),
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, email, password_hash, display_name, created_at) VALUES (?, ?, ?, ?, ?)`,
		account.ID, account.Email, string(hash), account.DisplayName, account.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: accounts.email") {
			return nil, domain.ErrConflict("this email address is already in use by another account")
		}
		return nil, err
	}
	return account, nil
}

func (r *IdentityRepo) DeleteAccount(ctx context.Context, accountID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, accountID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("account %s not found", accountID)
	}
	return nil
}

func (r *IdentityRepo) SetClaim(ctx context.Context, accountID, name string, value bool) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO account_claims (account_id, name, value) VALUES (?, ?, ?)
		 ON CONFLICT (account_id, name) DO UPDATE SET value = excluded.value`,
		accountID, name, boolToInt(value))
	if err != nil {
		// The one_admin_claim index rejects a second true admin claim.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return domain.ErrConflict("claim %q is already held by another account", name)
		}
		return err
	}
	return nil
}

func (r *IdentityRepo) ListAccounts(ctx context.Context, limit int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 1000
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, email, display_name, disabled, created_at, last_sign_in_at
		 FROM accounts ORDER BY created_at, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	index := make(map[string]int)
	for rows.Next() {
		var a domain.Account
		var disabled int64
		var lastSignIn sql.NullTime
		if err := rows.Scan(&a.ID, &a.Email, &a.DisplayName, &disabled, &a.CreatedAt, &lastSignIn); err != nil {
			return nil, err
		}
		a.Disabled = disabled != 0
		if lastSignIn.Valid {
			t := lastSignIn.Time
			a.LastSignInAt = &t
		}
		a.Claims = map[string]bool{}
		index[a.ID] = len(accounts)
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	claimRows, err := r.db.QueryContext(ctx, `SELECT account_id, name, value FROM account_claims`)
	if err != nil {
		return nil, err
	}
	defer claimRows.Close()

	for claimRows.Next() {
		var accountID, name string
		var value int64
		if err := claimRows.Scan(&accountID, &name, &value); err != nil {
			return nil, err
		}
		if i, ok := index[accountID]; ok {
			accounts[i].Claims[name] = value != 0
		}
	}
	return accounts, claimRows.Err()
}

func (r *IdentityRepo) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var a domain.Account
	var disabled int64
	var lastSignIn sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, display_name, disabled, created_at, last_sign_in_at
		 FROM accounts WHERE email = ? COLLATE NOCASE`, email).
		Scan(&a.ID, &a.Email, &a.DisplayName, &disabled, &a.CreatedAt, &lastSignIn)
	if err != nil {
		return nil, mapDBError(err)
	}
	a.Disabled = disabled != 0
	if lastSignIn.Valid {
		t := lastSignIn.Time
		a.LastSignInAt = &t
	}

	a.Claims = map[string]bool{}
	rows, err := r.db.QueryContext(ctx, `SELECT name, value FROM account_claims WHERE account_id = ?`, a.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var value int64
		if err := rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		a.Claims[name] = value != 0
	}
	return &a, rows.Err()
}

func (r *IdentityRepo) UpdateDisplayName(ctx context.Context, accountID, displayName string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET display_name = ? WHERE id = ?`, displayName, accountID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("account %s not found", accountID)
	}
	return nil
}

func (r *IdentityRepo) VerifyPassword(ctx context.Context, accountID, password string) error {
	var hash string
	err := r.db.QueryRowContext(ctx,
		`SELECT password_hash FROM accounts WHERE id = ?`, accountID).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound("account %s not found", accountID)
	}
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return domain.ErrAccessDenied("invalid email or password")
	}
	return nil
}

func (r *IdentityRepo) TouchLastSignIn(ctx context.Context, accountID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE accounts SET last_sign_in_at = ? WHERE id = ?`, time.Now().UTC(), accountID)
	return err
}
