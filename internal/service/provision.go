// Package service implements OmniCalc's application services on top of the
// domain store interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"omnicalc/internal/domain"
)

// adminScanLimit bounds the oracle's account listing. The single-admin check
// scans at most this many accounts, matching the store's list page size.
const adminScanLimit = 1000

// ProvisionService orchestrates the Identity Store and Profile Store to
// create accounts and, conditionally, grant the exclusive admin claim.
//
// The two stores are independent systems with no shared transaction, so every
// failure after a committed step triggers compensating rollback, most recent
// step first. On any error the observable state is as if the request never
// arrived: no orphaned account, no orphaned profile, no claim granted.
type ProvisionService struct {
	identity domain.IdentityStore
	profiles domain.ProfileStore
	logger   *slog.Logger
}

// NewProvisionService creates a ProvisionService.
func NewProvisionService(identity domain.IdentityStore, profiles domain.ProfileStore, logger *slog.Logger) *ProvisionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProvisionService{identity: identity, profiles: profiles, logger: logger}
}

// AdminExists reports whether any account currently holds the admin claim.
//
// The answer is conservative: if the listing call fails, AdminExists returns
// true. A false "no admin" could let a second admin through; a false "admin
// exists" only costs one rejected registration, which the caller can retry.
//
// This is a point-in-time check with no lock held after it returns. It is
// necessary but not sufficient for the single-admin invariant — the claim-set
// step's conditional write is what actually enforces it.
func (s *ProvisionService) AdminExists(ctx context.Context) bool {
	return s.adminExistsExcluding(ctx, "")
}

func (s *ProvisionService) adminExistsExcluding(ctx context.Context, excludeAccountID string) bool {
	accounts, err := s.identity.ListAccounts(ctx, adminScanLimit)
	if err != nil {
		s.logger.Error("admin existence check failed, assuming an admin exists", "error", err)
		return true
	}
	for _, a := range accounts {
		if a.ID == excludeAccountID {
			continue
		}
		if a.IsAdmin() {
			return true
		}
	}
	return false
}

// CreateAccount creates a user account and, when req.Role is admin, grants
// the exclusive admin claim. It returns the new account's ID.
//
// Errors are one of the four caller-visible kinds: ValidationError,
// ConflictError (email in use), AccessDeniedError (an admin already exists),
// or an unclassified error the transport surfaces as internal.
func (s *ProvisionService) CreateAccount(ctx context.Context, req domain.RegistrationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	// Pre-check: avoid the common case of needlessly creating and then
	// deleting an account. Not sufficient on its own under concurrency.
	if req.Role == domain.RoleAdmin && s.AdminExists(ctx) {
		return "", domain.ErrAccessDenied("an admin user already exists; cannot create another")
	}

	account, err := s.identity.CreateAccount(ctx, domain.NewAccountParams{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.FullName,
	})
	if err != nil {
		var conflict *domain.ConflictError
		var validation *domain.ValidationError
		if errors.As(err, &conflict) || errors.As(err, &validation) {
			return "", err
		}
		return "", fmt.Errorf("create account: %w", err)
	}

	if req.Role == domain.RoleAdmin {
		// Re-verify, excluding the account just created so a fresh listing
		// cannot report it as its own false positive.
		if s.adminExistsExcluding(ctx, account.ID) {
			s.rollbackAccount(ctx, account.ID)
			return "", domain.ErrAccessDenied("an admin user already exists; cannot create another")
		}
		if err := s.identity.SetClaim(ctx, account.ID, domain.ClaimAdmin, true); err != nil {
			s.rollbackAccount(ctx, account.ID)
			var conflict *domain.ConflictError
			if errors.As(err, &conflict) {
				// A concurrent registration won the claim between the check
				// and the set.
				return "", domain.ErrAccessDenied("an admin user already exists; cannot create another")
			}
			return "", fmt.Errorf("set admin claim: %w", err)
		}
	}

	if err := s.profiles.Put(ctx, &domain.Profile{
		AccountID: account.ID,
		Email:     account.Email,
		FullName:  req.FullName,
		IsAdmin:   req.Role == domain.RoleAdmin,
	}); err != nil {
		// Deleting the account also clears any claim set above.
		s.rollbackAccount(ctx, account.ID)
		return "", fmt.Errorf("write profile: %w", err)
	}

	s.logger.Info("account created",
		"account_id", account.ID, "admin", req.Role == domain.RoleAdmin)
	return account.ID, nil
}

// rollbackAccount undoes a committed account creation. A failed rollback is
// logged for operator visibility but never changes the error the caller
// sees — the original failure's classification takes precedence.
func (s *ProvisionService) rollbackAccount(ctx context.Context, accountID string) {
	if err := s.identity.DeleteAccount(ctx, accountID); err != nil {
		s.logger.Error("rollback failed: account may be orphaned",
			"account_id", accountID, "error", err)
	}
}
