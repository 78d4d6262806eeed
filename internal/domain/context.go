package domain

import "context"

type sessionKey struct{}

// Session carries the verified identity claims through request context.
type Session struct {
	AccountID string
	Email     string
	Name      string
	IsAdmin   bool
}

// WithSession stores a Session in the context.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext extracts the Session from the context.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}
