package ui

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"omnicalc/internal/domain"
	"omnicalc/internal/middleware"
)

func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := domain.SessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	notice := ""
	if r.URL.Query().Get("registered") == "1" {
		notice = "Account created. Sign in to continue."
	}
	renderHTML(w, http.StatusOK, loginPage(strings.TrimSpace(r.URL.Query().Get("error")), notice, csrfField(r)))
}

func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=invalid+form", http.StatusSeeOther)
		return
	}
	email := strings.TrimSpace(r.Form.Get("email"))
	password := r.Form.Get("password")

	token, _, err := h.Auth.SignIn(r.Context(), email, password)
	if err != nil {
		http.Redirect(w, r, "/login?error="+url.QueryEscape(publicAuthError(err)), http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := domain.SessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	adminAvailable := !h.Provision.AdminExists(r.Context())
	renderHTML(w, http.StatusOK, registerPage(strings.TrimSpace(r.URL.Query().Get("error")), adminAvailable, csrfField(r)))
}

func (h *Handler) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/register?error=invalid+form", http.StatusSeeOther)
		return
	}

	role := domain.RoleUser
	if r.Form.Get("admin") == "1" {
		role = domain.RoleAdmin
	}
	_, err := h.Provision.CreateAccount(r.Context(), domain.RegistrationRequest{
		Email:    strings.TrimSpace(r.Form.Get("email")),
		Password: r.Form.Get("password"),
		FullName: strings.TrimSpace(r.Form.Get("fullName")),
		Role:     role,
	})
	if err != nil {
		http.Redirect(w, r, "/register?error="+url.QueryEscape(publicAuthError(err)), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// publicAuthError returns the message shown on the auth pages. Domain errors
// carry user-facing text; anything else is masked.
func publicAuthError(err error) string {
	var validation *domain.ValidationError
	var conflict *domain.ConflictError
	var denied *domain.AccessDeniedError
	var notFound *domain.NotFoundError
	if errors.As(err, &validation) || errors.As(err, &conflict) || errors.As(err, &denied) || errors.As(err, &notFound) {
		return err.Error()
	}
	return "something went wrong, please try again"
}
