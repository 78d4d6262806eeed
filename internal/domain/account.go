package domain

import (
	"net/mail"
	"time"
)

// ClaimAdmin is the only claim this system defines. At most one account in the
// entire Identity Store may hold it with a true value at any instant.
const ClaimAdmin = "admin"

// Role selects the privilege requested at registration. A closed two-value
// enum — adding roles means revisiting the single-admin invariant, not just
// adding values here.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account is the Identity Store's view of a user. The password credential is
// write-only: it is supplied at creation and never read back.
type Account struct {
	ID           string
	Email        string
	DisplayName  string
	Disabled     bool
	Claims       map[string]bool
	CreatedAt    time.Time
	LastSignInAt *time.Time
}

// IsAdmin reports whether the account holds the admin claim.
func (a *Account) IsAdmin() bool {
	return a.Claims[ClaimAdmin]
}

// Profile is the Profile Store's denormalized record for an account. IsAdmin
// is a copy of the Identity Store claim and may transiently lag it.
type Profile struct {
	AccountID string
	Email     string
	FullName  string
	IsAdmin   bool
	CreatedAt time.Time
}

// NewAccountParams holds the write-only fields for account creation.
type NewAccountParams struct {
	Email       string
	Password    string
	DisplayName string
}

// RegistrationRequest is the ephemeral input to account provisioning.
type RegistrationRequest struct {
	Email    string
	Password string
	FullName string
	Role     Role
}

// Validate checks that the request is well-formed. The password length policy
// belongs to the Identity Store and is not duplicated here.
func (r *RegistrationRequest) Validate() error {
	if r.Email == "" || r.Password == "" || r.FullName == "" {
		return ErrValidation("email, password, and full name are required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return ErrValidation("email address is not valid")
	}
	if r.Role == "" {
		r.Role = RoleUser
	}
	if r.Role != RoleUser && r.Role != RoleAdmin {
		return ErrValidation("role must be 'user' or 'admin'")
	}
	return nil
}
