package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"omnicalc/internal/domain"
)

// sessionTTL is how long a minted session token stays valid.
const sessionTTL = 24 * time.Hour

// AuthService verifies credentials against the Identity Store and mints
// HS256 session tokens carrying the admin claim.
type AuthService struct {
	identity domain.IdentityStore
	secret   []byte
	logger   *slog.Logger
}

// NewAuthService creates an AuthService signing tokens with the given secret.
func NewAuthService(identity domain.IdentityStore, secret []byte, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{identity: identity, secret: secret, logger: logger}
}

// SignIn checks the email/password pair and returns a signed session token
// plus the session it embeds. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, domain.Session, error) {
	if email == "" || password == "" {
		return "", domain.Session{}, domain.ErrValidation("email and password are required")
	}

	account, err := s.identity.GetAccountByEmail(ctx, email)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return "", domain.Session{}, domain.ErrAccessDenied("invalid email or password")
		}
		return "", domain.Session{}, fmt.Errorf("look up account: %w", err)
	}
	if account.Disabled {
		return "", domain.Session{}, domain.ErrAccessDenied("this account is disabled")
	}

	if err := s.identity.VerifyPassword(ctx, account.ID, password); err != nil {
		var accessDenied *domain.AccessDeniedError
		if errors.As(err, &accessDenied) {
			return "", domain.Session{}, domain.ErrAccessDenied("invalid email or password")
		}
		return "", domain.Session{}, fmt.Errorf("verify password: %w", err)
	}

	if err := s.identity.TouchLastSignIn(ctx, account.ID); err != nil {
		s.logger.Warn("could not record sign-in time", "account_id", account.ID, "error", err)
	}

	session := domain.Session{
		AccountID: account.ID,
		Email:     account.Email,
		Name:      account.DisplayName,
		IsAdmin:   account.IsAdmin(),
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   session.AccountID,
		"email": session.Email,
		"name":  session.Name,
		"admin": session.IsAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.Session{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, session, nil
}
