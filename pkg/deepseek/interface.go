package deepseek

import "context"

// IDeepSeek defines the interface for DeepSeek LLM client
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Factory builds a client for one API key. The key is user-supplied at
// runtime, so callers hold a Factory rather than a client.
type Factory func(apiKey string) (IDeepSeek, error)

// NewFactory returns a Factory that shares base URL, model and HTTP client.
func NewFactory(base Config) Factory {
	return func(apiKey string) (IDeepSeek, error) {
		cfg := base
		cfg.APIKey = apiKey
		c, err := New(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}
