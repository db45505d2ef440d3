package http

import (
	"errors"
	"net/http"
	"strings"

	appDomain "loandesk-backend/internal/domain/application"
	visitDomain "loandesk-backend/internal/domain/visit"
)

// ---- helpers ----

// statusFor maps domain errors to HTTP codes: wrong password → 401, missing
// secret or missing record → 404, workflow conflicts → 409. A stored status
// that does not parse is a data problem, not a client one: 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, appDomain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, appDomain.ErrNotConfigured):
		return http.StatusNotFound
	case errors.Is(err, appDomain.ErrNotFound), errors.Is(err, visitDomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, appDomain.ErrEditLocked),
		errors.Is(err, appDomain.ErrInvalidTransition),
		errors.Is(err, visitDomain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, appDomain.ErrUnknownStatus), errors.Is(err, visitDomain.ErrUnknownStatus):
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
