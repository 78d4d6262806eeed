package api

import (
	"errors"
	"net/http"

	"omnicalc/internal/domain"
)

// httpStatusFromDomainError maps domain errors to HTTP status codes.
func httpStatusFromDomainError(err error) int {
	var notFound *domain.NotFoundError
	var accessDenied *domain.AccessDeniedError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &accessDenied):
		return http.StatusForbidden
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &conflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// codeFromDomainError maps domain errors to stable wire codes. Clients branch
// on the code, not the message, so these strings are part of the contract.
func codeFromDomainError(err error) string {
	var notFound *domain.NotFoundError
	var accessDenied *domain.AccessDeniedError
	var validation *domain.ValidationError
	var conflict *domain.ConflictError

	switch {
	case errors.As(err, &notFound):
		return "not-found"
	case errors.As(err, &accessDenied):
		return "permission-denied"
	case errors.As(err, &validation):
		return "invalid-argument"
	case errors.As(err, &conflict):
		return "already-exists"
	default:
		return "internal"
	}
}

// wireMessage returns the error text exposed to clients. Internal errors are
// masked so storage details never leak over the wire.
func wireMessage(err error) string {
	if codeFromDomainError(err) == "internal" {
		return "internal error"
	}
	return err.Error()
}
