package http

import (
	"ai-todo/internal/preference"
	"ai-todo/pkg/log"
)

type handler struct {
	l  log.Logger
	uc preference.UseCase
}

// New creates the AI settings HTTP handler.
func New(l log.Logger, uc preference.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
