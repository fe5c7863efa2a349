package response

const (
	// MessageSuccess is the message attached to every OK response.
	MessageSuccess = "Success"

	// DefaultUnavailableMessage is sent with 503 answers.
	DefaultUnavailableMessage = "Service unavailable"
)
