package api

import (
	"sync"
	"time"
)

// rateLimiter allows limit requests per client IP in any sliding minute.
type rateLimiter struct {
	now      func() time.Time
	requests map[string][]time.Time
	limit    int
	mu       sync.Mutex
}

func newRateLimiter(limit int) *rateLimiter {
	return &rateLimiter{
		now:      time.Now,
		requests: make(map[string][]time.Time),
		limit:    limit,
	}
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-time.Minute)

	if len(rl.requests) > 10_000 {
		rl.sweep(cutoff)
	}

	var valid []time.Time
	for _, t := range rl.requests[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= rl.limit {
		rl.requests[ip] = valid
		return false
	}

	rl.requests[ip] = append(valid, now)
	return true
}

// sweep drops clients with no request since cutoff. Caller holds mu.
func (rl *rateLimiter) sweep(cutoff time.Time) {
	for ip, times := range rl.requests {
		if len(times) == 0 || !times[len(times)-1].After(cutoff) {
			delete(rl.requests, ip)
		}
	}
}
