package http

import (
	"errors"

	"ai-todo/internal/task"
	repo "ai-todo/internal/task/repository"
	pkgErrors "ai-todo/pkg/errors"
)

var (
	errInvalidView     = pkgErrors.NewHTTPError(400, "view must be one of all, sorted, incomplete, completed")
	errInvalidPriority = pkgErrors.NewHTTPError(400, "priority must be one of LOW, MEDIUM, HIGH, URGENT")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(404, "task not found")
	case errors.Is(err, task.ErrUnknownView), errors.Is(err, repo.ErrUnknownView):
		return errInvalidView
	default:
		return pkgErrors.ErrInternalServerError
	}
}
