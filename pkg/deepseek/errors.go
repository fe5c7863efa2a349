package deepseek

import "errors"

var (
	ErrMissingAPIKey = errors.New("deepseek: API key is required")
	ErrAPIStatus     = errors.New("deepseek: API returned an error status")
	ErrBadResponse   = errors.New("deepseek: failed to decode response")
	ErrNoContent     = errors.New("deepseek: response has no choices[0].message.content")
)
