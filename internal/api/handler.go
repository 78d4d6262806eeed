// Package api provides the JSON HTTP endpoints: account provisioning,
// session sign-in and sign-out, and calculator suggestions.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"omnicalc/internal/service"
)

// Handler bundles the services the JSON endpoints depend on.
type Handler struct {
	provision *service.ProvisionService
	auth      *service.AuthService
	catalog   *service.CatalogService
	suggest   *service.SuggestionService
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required service dependencies.
func NewHandler(
	provision *service.ProvisionService,
	auth *service.AuthService,
	catalog *service.CatalogService,
	suggest *service.SuggestionService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		provision: provision,
		auth:      auth,
		catalog:   catalog,
		suggest:   suggest,
		logger:    logger.With("component", "api"),
	}
}

// Routes mounts the JSON endpoints on the given router.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/users", h.createAccount)
	r.Post("/session", h.signIn)
	r.Delete("/session", h.signOut)
	r.Post("/suggest", h.suggestNextStep)
}

// --- helpers ---

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := httpStatusFromDomainError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
	}
	h.respondJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    codeFromDomainError(err),
			"message": wireMessage(err),
		},
	})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
