package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter guards publish flows from rapid double-submission (a
// double-tapped publish button fires the handler twice).
type Limiter interface {
	Allow(flow string) bool
}

// InMemoryLimiter is an implementation of Limiter stored in memory,
// keyed per flow.
type InMemoryLimiter struct {
	flows map[string]*rate.Limiter
	mu    sync.Mutex
	r     rate.Limit
	b     int
}

// NewInMemoryLimiter creates a new rate limiter.
// Example: NewInMemoryLimiter(1, 2*time.Second, 1) -> one submission per
// flow every 2 seconds, no burst.
func NewInMemoryLimiter(requests int, per time.Duration, burst int) Limiter {
	return &InMemoryLimiter{
		flows: make(map[string]*rate.Limiter),
		r:     rate.Every(per / time.Duration(requests)),
		b:     burst,
	}
}

// Allow checks if a flow may accept another submission right now.
func (l *InMemoryLimiter) Allow(flow string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.flows[flow]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.flows[flow] = limiter
	}

	return limiter.Allow()
}
