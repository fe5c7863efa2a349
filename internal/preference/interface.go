package preference

import "context"

// UseCase is the local credential store for the AI extractor.
type UseCase interface {
	// SaveAPIKey stores key and enables AI when key is not blank.
	SaveAPIKey(ctx context.Context, key string) error
	// APIKey returns the stored key, or "" when none.
	APIKey() string
	// IsAIEnabled reports whether AI is switched on and a key is stored.
	IsAIEnabled() bool
	// ClearAPIKey removes the key and disables AI.
	ClearAPIKey(ctx context.Context) error
	// Status describes the stored configuration without exposing the key.
	Status() Status
}
