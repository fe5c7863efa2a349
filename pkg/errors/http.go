package errors

// HTTPError is an error that carries the HTTP status the delivery layer should answer with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and client-facing message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

var (
	ErrTooManyRequests     = NewHTTPError(429, "Too many requests")
	ErrInternalServerError = NewHTTPError(500, "Internal server error")
)
