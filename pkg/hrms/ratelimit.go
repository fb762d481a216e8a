package hrms

import (
	"golang.org/x/time/rate"
)

// NewRateLimiter returns a token-bucket RateLimiter allowing rps requests
// per second with the given burst size.
func NewRateLimiter(rps float64, burst int) RateLimiter {
	return rate.NewLimiter(rate.Limit(rps), burst)
}
