package service

import (
	"context"
	"sync"
	"time"
)

const (
	limiterSweepInterval = 5 * time.Minute
	limiterIdleTTL       = 10 * time.Minute
)

// RateLimiter throttles attempts per key, typically a client address on the
// auth endpoints. Each key holds up to burst attempts and regains perSecond
// attempts every second.
type RateLimiter struct {
	mu        sync.Mutex
	keys      map[string]*allowance
	perSecond float64
	burst     float64
	now       func() time.Time
}

type allowance struct {
	left float64
	seen time.Time
}

// NewRateLimiter creates a RateLimiter. Idle keys are swept until ctx is
// done.
func NewRateLimiter(ctx context.Context, perSecond, burst float64) *RateLimiter {
	rl := &RateLimiter{
		keys:      make(map[string]*allowance),
		perSecond: perSecond,
		burst:     burst,
		now:       time.Now,
	}
	go rl.sweep(ctx)
	return rl
}

// Allow consumes one attempt for key and reports whether one was left.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	a, ok := rl.keys[key]
	if !ok {
		a = &allowance{left: rl.burst, seen: now}
		rl.keys[key] = a
	}

	a.left = min(a.left+now.Sub(a.seen).Seconds()*rl.perSecond, rl.burst)
	a.seen = now
	if a.left < 1 {
		return false
	}
	a.left--
	return true
}

func (rl *RateLimiter) sweep(ctx context.Context) {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.mu.Lock()
			cutoff := rl.now().Add(-limiterIdleTTL)
			for key, a := range rl.keys {
				if a.seen.Before(cutoff) {
					delete(rl.keys, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
