package repository

import "errors"

var (
	ErrFailedToUpsert = errors.New("failed to upsert task")
	ErrFailedToGet    = errors.New("failed to get task")
	ErrFailedToList   = errors.New("failed to list tasks")
	ErrFailedToCount  = errors.New("failed to count tasks")
	ErrFailedToDelete = errors.New("failed to delete task")
	ErrFailedToWatch  = errors.New("failed to watch tasks")
	ErrUnknownView    = errors.New("unknown list view")
)
