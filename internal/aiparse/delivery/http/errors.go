package http

import (
	"errors"

	"ai-todo/internal/aiparse"
	pkgErrors "ai-todo/pkg/errors"
)

var errEmptyText = pkgErrors.NewHTTPError(400, "text must not be empty")

// mapError translates parse errors into HTTP errors. Upstream failures keep
// their message so the client can show it; reply-shape problems do not.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, aiparse.ErrEmptyInput):
		return errEmptyText
	case errors.Is(err, aiparse.ErrMissingAPIKey):
		return pkgErrors.NewHTTPError(400, err.Error())
	case errors.Is(err, aiparse.ErrAPIRequest):
		return pkgErrors.NewHTTPError(502, err.Error())
	case errors.Is(err, aiparse.ErrResponseShape),
		errors.Is(err, aiparse.ErrNoJSONObject),
		errors.Is(err, aiparse.ErrMalformedJSON):
		return pkgErrors.NewHTTPError(422, "AI reply could not be understood, please rephrase")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
