package middleware

import (
	"ai-todo/pkg/log"
)

// Middleware holds the gin middlewares shared by the domain routers.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. aiPerMin caps requests per client IP per
// minute on rate-limited routes; zero or less disables the limit.
func New(l log.Logger, aiPerMin int) Middleware {
	m := Middleware{l: l}
	if aiPerMin > 0 {
		m.limiter = newRateLimiter(aiPerMin)
	}
	return m
}
