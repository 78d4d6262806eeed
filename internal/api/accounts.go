package api

import (
	"net/http"

	"omnicalc/internal/domain"
)

type createAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role,omitempty"`
}

type createAccountResponse struct {
	UID string `json:"uid"`
}

// createAccount provisions a new account. The role defaults to "user";
// requesting "admin" succeeds only when no admin exists yet.
func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, domain.ErrValidation("request body is not valid JSON"))
		return
	}

	uid, err := h.provision.CreateAccount(r.Context(), domain.RegistrationRequest{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, createAccountResponse{UID: uid})
}
