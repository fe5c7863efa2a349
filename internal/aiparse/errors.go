package aiparse

import "errors"

var (
	ErrEmptyInput    = errors.New("input text is empty")
	ErrMissingAPIKey = errors.New("API key is not configured")
	ErrAPIRequest    = errors.New("AI request failed")
	ErrResponseShape = errors.New("AI reply has no message content")
	ErrNoJSONObject  = errors.New("AI reply contains no JSON object")
	ErrMalformedJSON = errors.New("AI reply JSON is malformed")
	ErrNoTaskAdder   = errors.New("no task board configured")
)
