package preference

import "errors"

var (
	ErrBlankAPIKey  = errors.New("API key is blank")
	ErrFailedToSave = errors.New("failed to save preferences")
)
