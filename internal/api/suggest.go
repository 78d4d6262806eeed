package api

import (
	"net/http"

	"omnicalc/internal/domain"
)

type suggestRequest struct {
	Calculator string `json:"calculator"`
}

type suggestResponse struct {
	Suggestion string `json:"suggestion"`
}

// suggestNextStep returns a short tip on what to calculate next after using
// the named calculator. Falls back to a canned tip when the model is
// unavailable, so the endpoint never fails on upstream errors.
func (h *Handler) suggestNextStep(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, domain.ErrValidation("request body is not valid JSON"))
		return
	}
	if req.Calculator == "" {
		h.respondError(w, domain.ErrValidation("calculator slug is required"))
		return
	}

	calc, err := h.catalog.Calculator(r.Context(), req.Calculator)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, suggestResponse{
		Suggestion: h.suggest.NextStep(r.Context(), calc),
	})
}
