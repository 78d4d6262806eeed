package service

import (
	"context"
	"strings"

	"omnicalc/internal/domain"
)

// ProfileService reads and edits profile records. The full-name edit updates
// both the Identity Store display name and the profile document; it never
// touches the admin flag.
type ProfileService struct {
	identity domain.IdentityStore
	profiles domain.ProfileStore
}

// NewProfileService creates a ProfileService.
func NewProfileService(identity domain.IdentityStore, profiles domain.ProfileStore) *ProfileService {
	return &ProfileService{identity: identity, profiles: profiles}
}

// Get returns the profile for an account.
func (s *ProfileService) Get(ctx context.Context, accountID string) (*domain.Profile, error) {
	return s.profiles.Get(ctx, accountID)
}

// UpdateFullName changes the account owner's name in both stores.
func (s *ProfileService) UpdateFullName(ctx context.Context, accountID, fullName string) error {
	fullName = strings.TrimSpace(fullName)
	if accountID == "" || fullName == "" {
		return domain.ErrValidation("account id and full name are required")
	}

	if err := s.identity.UpdateDisplayName(ctx, accountID, fullName); err != nil {
		return err
	}
	return s.profiles.SetFullName(ctx, accountID, fullName)
}

// ListAccounts returns the account listing for the admin dashboard.
func (s *ProfileService) ListAccounts(ctx context.Context, limit int) ([]domain.Account, error) {
	return s.identity.ListAccounts(ctx, limit)
}
