package ratelimit

import (
	"context"
	"sync"
	"time"

	coreport "github.com/mkarimi-dev/finance-tracker/internal/domain/port/core"
	"github.com/mkarimi-dev/finance-tracker/internal/domain/port/ratelimit"
)

// MemoryLimiter is an in-process sliding-window limiter with the same
// contract as the Redis one. Used for tests and deployments without a
// remote counter.
type MemoryLimiter struct {
	mu           sync.Mutex
	attempts     map[string][]time.Time
	requests     int
	window       time.Duration
	timeProvider coreport.TimeProvider
}

// NewMemoryLimiter creates an in-memory sliding-window limiter
func NewMemoryLimiter(requests int, window time.Duration, timeProvider coreport.TimeProvider) ratelimit.Limiter {
	return &MemoryLimiter{
		attempts:     make(map[string][]time.Time),
		requests:     requests,
		window:       window,
		timeProvider: timeProvider,
	}
}

// Check records an attempt for the key and reports whether it is allowed
func (l *MemoryLimiter) Check(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.timeProvider.Now()
	cutoff := now.Add(-l.window)

	// Prune attempts that fell out of the window
	kept := l.attempts[key][:0]
	for _, at := range l.attempts[key] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}

	if len(kept) >= l.requests {
		l.attempts[key] = kept
		return false, nil
	}

	l.attempts[key] = append(kept, now)
	return true, nil
}
