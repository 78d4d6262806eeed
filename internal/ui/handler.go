// Package ui renders the server-side HTML pages: the calculator catalog,
// sign-in and registration, the profile page, and the admin dashboard.
package ui

import (
	"net/http"

	"omnicalc/internal/service"

	gomponents "maragu.dev/gomponents"
)

type Handler struct {
	Provision  *service.ProvisionService
	Auth       *service.AuthService
	Profile    *service.ProfileService
	Catalog    *service.CatalogService
	Suggest    *service.SuggestionService
	Production bool
}

func NewHandler(
	provision *service.ProvisionService,
	auth *service.AuthService,
	profile *service.ProfileService,
	catalog *service.CatalogService,
	suggest *service.SuggestionService,
	production bool,
) *Handler {
	return &Handler{
		Provision:  provision,
		Auth:       auth,
		Profile:    profile,
		Catalog:    catalog,
		Suggest:    suggest,
		Production: production,
	}
}

func renderHTML(w http.ResponseWriter, status int, node gomponents.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = node.Render(w)
}
