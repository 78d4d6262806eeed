package ui

import (
	"net/http"

	"omnicalc/internal/domain"
)

// adminListLimit bounds the dashboard listing.
const adminListLimit = 1000

func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := domain.SessionFromContext(r.Context())
	if !ok || !session.IsAdmin {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	accounts, err := h.Profile.ListAccounts(r.Context(), adminListLimit)
	if err != nil {
		renderHTML(w, http.StatusInternalServerError, errorPage("Something went wrong", "The user list could not be loaded."))
		return
	}
	categories, err := h.Catalog.Categories(r.Context())
	if err != nil {
		renderHTML(w, http.StatusInternalServerError, errorPage("Something went wrong", "The catalog could not be loaded."))
		return
	}
	renderHTML(w, http.StatusOK, adminPage(&session, categories, accounts))
}
