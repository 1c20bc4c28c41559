package middleware

import (
	"todo-weather/pkg/log"
)

type Middleware struct {
	l           log.Logger
	rateLimiter *rateLimiter
}

// New creates the shared middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	mw := Middleware{l: l}
	if requestsPerMin > 0 {
		mw.rateLimiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
