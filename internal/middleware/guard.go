package middleware

import (
	"net/http"

	"omnicalc/internal/domain"
)

// RequireSession verifies the forwarded session token and stores the session
// in the request context. An absent header redirects to the sign-in page; an
// invalid token is treated the same way.
func RequireSession(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionHeaderName)
			if token == "" {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			session, err := verifier.Verify(token)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(domain.WithSession(r.Context(), session)))
		})
	}
}

// RequireAdmin verifies the forwarded session token and requires the admin
// claim. An absent header redirects to sign-in; a valid session without the
// claim is redirected to the home page. The guard is stateless and performs
// no writes.
func RequireAdmin(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionHeaderName)
			if token == "" {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			session, err := verifier.Verify(token)
			if err != nil || !session.IsAdmin {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(domain.WithSession(r.Context(), session)))
		})
	}
}

// OptionalSession attaches a session to the context when a valid token is
// present, and passes the request through untouched otherwise. Used by
// public pages that adapt to sign-in state.
func OptionalSession(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(SessionHeaderName)
			if token == "" {
				if cookie, err := r.Cookie(SessionCookieName); err == nil {
					token = cookie.Value
				}
			}
			if token != "" {
				if session, err := verifier.Verify(token); err == nil {
					r = r.WithContext(domain.WithSession(r.Context(), session))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
