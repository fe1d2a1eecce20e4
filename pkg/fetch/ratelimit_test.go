package fetch

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func newTestRateLimiter(requestsPerSecond float64) *RateLimiter {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewRateLimiter(requestsPerSecond, log)
}

func TestRateLimiter_FirstRequestImmediate(t *testing.T) {
	rl := newTestRateLimiter(2.0)

	start := time.Now()
	if err := rl.Wait(context.Background(), "bip.example.pl"); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("first request should not be delayed, took %v", elapsed)
	}
}

func TestRateLimiter_SecondRequestDelayed(t *testing.T) {
	rl := newTestRateLimiter(10.0) // 100ms interval

	ctx := context.Background()
	if err := rl.Wait(ctx, "bip.example.pl"); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}

	start := time.Now()
	if err := rl.Wait(ctx, "bip.example.pl"); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("second request should be rate limited, took only %v", elapsed)
	}
}

func TestRateLimiter_DomainsIndependent(t *testing.T) {
	rl := newTestRateLimiter(1.0) // 1s interval

	ctx := context.Background()
	if err := rl.Wait(ctx, "bip.lipka.pl"); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}

	start := time.Now()
	if err := rl.Wait(ctx, "bip.zlotow.pl"); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("different domain should not be delayed, took %v", elapsed)
	}
}

func TestRateLimiter_ZeroRateDisablesLimiting(t *testing.T) {
	rl := newTestRateLimiter(0)

	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 5; i++ {
		if err := rl.Wait(ctx, "bip.example.pl"); err != nil {
			t.Fatalf("Wait returned error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("disabled limiter should not sleep, took %v", elapsed)
	}
}

func TestRateLimiter_CancelDuringWait(t *testing.T) {
	rl := newTestRateLimiter(0.5) // 2s interval

	ctx := context.Background()
	if err := rl.Wait(ctx, "bip.example.pl"); err != nil {
		t.Fatalf("Wait returned error: %v", err)
	}

	cancelCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := rl.Wait(cancelCtx, "bip.example.pl")
	if err == nil {
		t.Fatal("expected context error from cancelled Wait")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("cancelled Wait should return promptly, took %v", elapsed)
	}
}
