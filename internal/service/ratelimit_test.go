package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/msomdec/jobtracker/internal/service"
)

func newLimiter(t *testing.T, perSecond, burst float64) *service.RateLimiter {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return service.NewRateLimiter(ctx, perSecond, burst)
}

func TestRateLimiter_AllowsUpToBurst(t *testing.T) {
	rl := newLimiter(t, 0, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("4th attempt should be denied")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := newLimiter(t, 0, 1)

	if !rl.Allow("a") {
		t.Fatal("a: first attempt should be allowed")
	}
	if rl.Allow("a") {
		t.Fatal("a: second attempt should be denied")
	}
	if !rl.Allow("b") {
		t.Fatal("b: first attempt should be allowed")
	}
}

func TestRateLimiter_Refills(t *testing.T) {
	rl := newLimiter(t, 100, 1)

	if !rl.Allow("k") {
		t.Fatal("first attempt should be allowed")
	}
	time.Sleep(50 * time.Millisecond)
	if !rl.Allow("k") {
		t.Fatal("attempt after refill should be allowed")
	}
}
