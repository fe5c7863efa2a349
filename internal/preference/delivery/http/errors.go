package http

import (
	"errors"

	"ai-todo/internal/preference"
	pkgErrors "ai-todo/pkg/errors"
)

// mapError translates preference errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, preference.ErrBlankAPIKey):
		return pkgErrors.NewHTTPError(400, "api_key must not be blank")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
