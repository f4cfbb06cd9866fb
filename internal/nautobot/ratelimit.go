package nautobot

import (
	"context"
	"sync"
	"time"

	"github.com/aiopnet/mcp-nautobot/metrics"
)

// RateLimiter bounds outgoing requests with a sliding window: at most
// maxRequests timestamps may fall inside any trailing interval of length
// window. Acquire blocks the calling goroutine (and only it) until issuing a
// request would not exceed the limit. This is not a token bucket; bursts up
// to maxRequests pass immediately, and the guarantee is on the window count.
type RateLimiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	requests    []time.Time
}

// NewRateLimiter creates a limiter allowing maxRequests per window.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
	}
}

// Acquire blocks until a request slot is available or the context is
// canceled, then records the current time as a new request.
func (rl *RateLimiter) Acquire(ctx context.Context) error {
	for {
		rl.mu.Lock()
		now := time.Now()
		rl.evict(now)

		if len(rl.requests) < rl.maxRequests {
			rl.requests = append(rl.requests, now)
			rl.mu.Unlock()
			return nil
		}

		// Wait for the oldest surviving request to age out, then re-check:
		// concurrent acquirers may have claimed the freed slot meanwhile.
		wait := rl.requests[0].Add(rl.window).Sub(now)
		rl.mu.Unlock()

		metrics.RateLimitWaits.Inc()
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// evict drops all timestamps older than the window. Caller holds rl.mu.
func (rl *RateLimiter) evict(now time.Time) {
	cutoff := now.Add(-rl.window)
	i := 0
	for i < len(rl.requests) && !rl.requests[i].After(cutoff) {
		i++
	}
	if i > 0 {
		rl.requests = append(rl.requests[:0], rl.requests[i:]...)
	}
}

// Pending returns the number of requests currently inside the window.
func (rl *RateLimiter) Pending() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.evict(time.Now())
	return len(rl.requests)
}
