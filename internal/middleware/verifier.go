// Package middleware provides HTTP middleware: request IDs, rate limiting,
// session-token forwarding, and the admin access guard.
package middleware

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"omnicalc/internal/domain"
)

// TokenVerifier validates a session token and returns the session it embeds.
type TokenVerifier interface {
	Verify(tokenString string) (domain.Session, error)
}

// HS256Verifier validates session tokens signed with a shared HS256 secret.
type HS256Verifier struct {
	secret []byte
}

// NewHS256Verifier creates a verifier for the given signing secret.
func NewHS256Verifier(secret []byte) (*HS256Verifier, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("session secret is required")
	}
	return &HS256Verifier{secret: secret}, nil
}

// Verify parses and validates the token, extracting the embedded claims.
func (v *HS256Verifier) Verify(tokenString string) (domain.Session, error) {
	tok, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method == nil || token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Session{}, fmt.Errorf("token verification failed: %w", err)
	}

	raw, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Session{}, fmt.Errorf("parse claims: unsupported claim type %T", tok.Claims)
	}

	var s domain.Session
	if sub, ok := raw["sub"].(string); ok {
		s.AccountID = sub
	}
	if s.AccountID == "" {
		return domain.Session{}, fmt.Errorf("token has no subject")
	}
	if email, ok := raw["email"].(string); ok {
		s.Email = email
	}
	if name, ok := raw["name"].(string); ok {
		s.Name = name
	}
	if admin, ok := raw["admin"].(bool); ok {
		s.IsAdmin = admin
	}
	return s, nil
}
