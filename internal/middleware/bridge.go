package middleware

import (
	"net/http"
	"strings"
)

// SessionCookieName is the cookie set at sign-in and read by the bridge.
const SessionCookieName = "session_token"

// SessionHeaderName is the header the bridge forwards the token in.
const SessionHeaderName = "X-Session-Token"

// TokenBridge copies the session cookie value into the forwarded request
// header for requests whose path matches one of the guarded prefixes. It
// does not validate the token; verification belongs to the access guard
// downstream. A missing cookie simply leaves the header absent. No other
// header or cookie is touched.
func TokenBridge(guardedPrefixes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, prefix := range guardedPrefixes {
				if !strings.HasPrefix(r.URL.Path, prefix) {
					continue
				}
				if cookie, err := r.Cookie(SessionCookieName); err == nil && strings.TrimSpace(cookie.Value) != "" {
					r.Header.Set(SessionHeaderName, strings.TrimSpace(cookie.Value))
				}
				break
			}
			next.ServeHTTP(w, r)
		})
	}
}
