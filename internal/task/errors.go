package task

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrUnknownView  = errors.New("unknown task view")
)
