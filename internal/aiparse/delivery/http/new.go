package http

import (
	"ai-todo/internal/aiparse"
	"ai-todo/pkg/log"
)

type handler struct {
	l  log.Logger
	uc aiparse.UseCase
}

// New creates the AI parse HTTP handler.
func New(l log.Logger, uc aiparse.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
