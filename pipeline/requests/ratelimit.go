package requests

import (
	"context"
	"soloq/pkg/config"
	"sync"
	"time"
)

// window is a single rate limiting constraint.
type window struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// RateLimiter holds all the constraints of the Riot API.
// The development key carries a burst and a sustained window.
type RateLimiter struct {
	windows []*window
	mu      sync.Mutex
}

// NewRateLimiter creates the limiter from the configured windows.
func NewRateLimiter(cfg *config.RiotConfiguration) *RateLimiter {
	now := time.Now()
	return &RateLimiter{
		windows: []*window{
			{
				limit:         cfg.BurstLimit,
				resetInterval: cfg.BurstInterval,
				lastReset:     now,
			},
			{
				limit:         cfg.SustainedLimit,
				resetInterval: cfg.SustainedInterval,
				lastReset:     now,
			},
		},
	}
}

// Wait blocks until a request slot is available on every window.
// Returns the context error if the caller gives up first.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		wait := r.reserve()
		if wait == 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// reserve takes a slot when available, otherwise returns how long to wait.
func (r *RateLimiter) reserve() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Reset every window that completed its interval.
	now := time.Now()
	for _, w := range r.windows {
		if now.Sub(w.lastReset) >= w.resetInterval {
			w.count = 0
			w.lastReset = now
		}
	}

	// Find the longest wait among the exhausted windows.
	var wait time.Duration
	for _, w := range r.windows {
		if w.count >= w.limit {
			if until := w.resetInterval - now.Sub(w.lastReset); until > wait {
				wait = until
			}
		}
	}

	if wait > 0 {
		return wait
	}

	for _, w := range r.windows {
		w.count++
	}

	return 0
}
