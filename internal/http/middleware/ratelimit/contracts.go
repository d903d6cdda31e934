package ratelimit

import (
	"net/http"
	"time"
)

// Limiter decides whether one more attempt under key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// Clock is injected so refill can be tested without sleeping.
type Clock interface {
	Now() time.Time
}

// KeyFunc derives the bucket key of a request.
type KeyFunc func(r *http.Request) string

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// Unlimited admits every attempt. It backs RATE_LIMIT_ENABLED=false.
type Unlimited struct{}

// Allow implements Limiter.
func (Unlimited) Allow(string) bool { return true }
