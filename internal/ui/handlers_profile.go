package ui

import (
	"net/http"
	"net/url"
	"strings"

	"omnicalc/internal/domain"
)

func (h *Handler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	profile, err := h.Profile.Get(r.Context(), session.AccountID)
	if err != nil {
		renderHTML(w, http.StatusInternalServerError, errorPage("Something went wrong", "Your profile could not be loaded."))
		return
	}
	categories, err := h.Catalog.Categories(r.Context())
	if err != nil {
		renderHTML(w, http.StatusInternalServerError, errorPage("Something went wrong", "The catalog could not be loaded."))
		return
	}
	notice := ""
	if r.URL.Query().Get("saved") == "1" {
		notice = "Profile updated."
	}
	errMsg := strings.TrimSpace(r.URL.Query().Get("error"))
	renderHTML(w, http.StatusOK, profilePage(&session, categories, profile, errMsg, notice, csrfField(r)))
}

// ProfileSubmit updates the full name only. The admin flag is never
// writable from here.
func (h *Handler) ProfileSubmit(w http.ResponseWriter, r *http.Request) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/profile?error=invalid+form", http.StatusSeeOther)
		return
	}
	fullName := strings.TrimSpace(r.Form.Get("fullName"))
	if err := h.Profile.UpdateFullName(r.Context(), session.AccountID, fullName); err != nil {
		http.Redirect(w, r, "/profile?error="+url.QueryEscape(publicAuthError(err)), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/profile?saved=1", http.StatusSeeOther)
}
