package repository

import (
	"context"
	"database/sql"
	"time"

	"omnicalc/internal/domain"
)

// ProfileRepo is the SQLite implementation of domain.ProfileStore. It is kept
// deliberately independent of the accounts tables: the two stores model
// separate systems and only the Provisioning Service keeps them consistent.
type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Put(ctx context.Context, profile *domain.Profile) error {
	profile.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (account_id, email, full_name, is_admin, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (account_id) DO UPDATE SET
		   email = excluded.email, full_name = excluded.full_name, is_admin = excluded.is_admin`,
		profile.AccountID, profile.Email, profile.FullName, boolToInt(profile.IsAdmin), profile.CreatedAt)
	return err
}

func (r *ProfileRepo) Get(ctx context.Context, accountID string) (*domain.Profile, error) {
	var p domain.Profile
	var isAdmin int64
	err := r.db.QueryRowContext(ctx,
		`SELECT account_id, email, full_name, is_admin, created_at FROM profiles WHERE account_id = ?`,
		accountID).Scan(&p.AccountID, &p.Email, &p.FullName, &isAdmin, &p.CreatedAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	p.IsAdmin = isAdmin != 0
	return &p, nil
}

func (r *ProfileRepo) SetFullName(ctx context.Context, accountID, fullName string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET full_name = ? WHERE account_id = ?`, fullName, accountID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound("profile %s not found", accountID)
	}
	return nil
}
