package ui

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"omnicalc/internal/ui/assets"
)

// MountRoutes wires the HTML pages. Public pages get an optional session so
// the shell can show sign-in state; /profile and /admin sit behind the
// guards supplied by the caller.
func MountRoutes(r chi.Router, h *Handler, optionalSession, requireSession, requireAdmin func(http.Handler) http.Handler) {
	staticFS, err := fs.Sub(assets.StaticFS(), "static")
	if err == nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	r.Group(func(r chi.Router) {
		r.Use(h.EnsureCSRFToken)
		r.Use(h.RequireCSRF)
		r.Use(optionalSession)

		r.Get("/login", h.LoginPage)
		r.Post("/login", h.LoginSubmit)
		r.Get("/register", h.RegisterPage)
		r.Post("/register", h.RegisterSubmit)
		r.Post("/logout", h.Logout)

		r.Get("/", h.Home)
		r.Get("/categories/{categorySlug}", h.Category)
		r.Get("/calculators/{calcSlug}", h.CalculatorPage)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.EnsureCSRFToken)
		r.Use(h.RequireCSRF)
		r.Use(requireSession)
		r.Get("/profile", h.ProfilePage)
		r.Post("/profile", h.ProfileSubmit)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.EnsureCSRFToken)
		r.Use(requireAdmin)
		r.Get("/admin", h.AdminDashboard)
	})
}
