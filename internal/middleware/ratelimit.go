package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/observability"
)

const defaultRateLimitIdle = 5 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. A client's bucket lives
// as long as the client keeps sending requests; Sweep drops buckets idle
// for longer than the configured timeout.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	enabled bool
	idle    time.Duration
	now     func() time.Time

	stop chan struct{}
	done chan struct{}
}

func NewRateLimiter(cfg config.SecurityConfig) *RateLimiter {
	idle := cfg.RateLimitIdle
	if idle <= 0 {
		idle = defaultRateLimitIdle
	}

	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(cfg.RateLimitRPS),
		burst:   cfg.RateLimitBurst,
		enabled: cfg.EnableRateLimit,
		idle:    idle,
		now:     time.Now,
	}
}

// Allow spends one token from ip's bucket and marks the client as active.
func (rl *RateLimiter) Allow(ip string) bool {
	if !rl.enabled {
		return true
	}

	now := rl.now()

	rl.mu.Lock()
	c, ok := rl.clients[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = c
	}
	c.lastSeen = now
	rl.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

// Sweep removes clients not seen for the idle timeout and reports how many
// were removed.
func (rl *RateLimiter) Sweep() int {
	cutoff := rl.now().Add(-rl.idle)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	for ip, c := range rl.clients {
		if !c.lastSeen.After(cutoff) {
			delete(rl.clients, ip)
			removed++
		}
	}
	return removed
}

// Len reports how many clients currently hold a bucket.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Start sweeps every interval from a single goroutine until Close. A
// non-positive interval sweeps at half the idle timeout. Calling Start on a
// running limiter does nothing.
func (rl *RateLimiter) Start(interval time.Duration) {
	if interval <= 0 {
		interval = rl.idle / 2
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.stop != nil {
		return
	}

	rl.stop = make(chan struct{})
	rl.done = make(chan struct{})
	go rl.sweepLoop(interval, rl.stop, rl.done)
}

func (rl *RateLimiter) sweepLoop(interval time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.Sweep()
		case <-stop:
			return
		}
	}
}

// Close stops the sweeper and waits for it to exit or for ctx to end.
func (rl *RateLimiter) Close(ctx context.Context) error {
	rl.mu.Lock()
	stop, done := rl.stop, rl.done
	rl.stop, rl.done = nil, nil
	rl.mu.Unlock()

	if stop == nil {
		return nil
	}
	close(stop)

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RateLimit rejects requests beyond the per-client budget with a
// RATE_LIMIT_EXCEEDED error envelope.
func RateLimit(limiter *RateLimiter, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if limiter.Allow(ip) {
				next.ServeHTTP(w, r)
				return
			}

			requestID := observability.GetRequestID(r.Context())
			logger.Warn("rate limit exceeded", "ip", ip, "request_id", requestID)

			w.Header().Set("Retry-After", "1")
			errors.WriteError(w, logger, errors.RateLimit("Too many requests"), requestID)
		})
	}
}
