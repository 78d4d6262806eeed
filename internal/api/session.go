package api

import (
	"net/http"
	"time"

	"omnicalc/internal/domain"
	"omnicalc/internal/middleware"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token   string `json:"token"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}

// signIn verifies credentials, mints a session token, and sets it as a
// cookie so the bridge can forward it on guarded pages.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, domain.ErrValidation("request body is not valid JSON"))
		return
	}

	token, session, err := h.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int((24 * time.Hour).Seconds()),
	})
	h.respondJSON(w, http.StatusOK, signInResponse{
		Token:   token,
		Email:   session.Email,
		Name:    session.Name,
		IsAdmin: session.IsAdmin,
	})
}

// signOut clears the session cookie. Tokens are stateless, so there is
// nothing to revoke server-side.
func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	w.WriteHeader(http.StatusNoContent)
}
