package fetch

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// RateLimiter enforces a minimum interval between requests to the same
// domain. Each domain gets its own entry whose lock is held across the sleep,
// so concurrent fetchers targeting one domain are serialized while fetchers
// for other domains proceed untouched.
type RateLimiter struct {
	minInterval time.Duration
	domains     map[string]*domainLimiter
	mu          sync.Mutex
	log         *logrus.Logger
}

type domainLimiter struct {
	mu   sync.Mutex
	last time.Time
}

// NewRateLimiter creates a limiter allowing requestsPerSecond per domain.
func NewRateLimiter(requestsPerSecond float64, log *logrus.Logger) *RateLimiter {
	var interval time.Duration
	if requestsPerSecond > 0 {
		interval = time.Duration(float64(time.Second) / requestsPerSecond)
	}
	return &RateLimiter{
		minInterval: interval,
		domains:     make(map[string]*domainLimiter),
		log:         log,
	}
}

func (rl *RateLimiter) limiterFor(domain string) *domainLimiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	dl, ok := rl.domains[domain]
	if !ok {
		dl = &domainLimiter{}
		rl.domains[domain] = dl
	}
	return dl
}

// Wait blocks until the domain's minimum interval has elapsed since the last
// request, then records the current time as the last request time. Returns
// early with the context error on cancellation.
func (rl *RateLimiter) Wait(ctx context.Context, domain string) error {
	if rl.minInterval <= 0 {
		return nil
	}

	dl := rl.limiterFor(domain)
	dl.mu.Lock()
	defer dl.mu.Unlock()

	elapsed := time.Since(dl.last)
	if !dl.last.IsZero() && elapsed < rl.minInterval {
		sleep := rl.minInterval - elapsed
		rl.log.WithFields(logrus.Fields{
			"domain": domain, "sleep": sleep,
		}).Debug("Rate limit applying sleep")

		timer := time.NewTimer(sleep)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	dl.last = time.Now()
	return nil
}
