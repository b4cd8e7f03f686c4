package ratelimit

import (
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bornholm/comptoir/internal/syncx"
	"github.com/bornholm/comptoir/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const DefaultIdleTimeout = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiter throttles requests per client key. Clients idle for longer
// than the idle timeout are forgotten.
type RateLimiter struct {
	rate        rate.Limit
	burst       int
	idleTimeout time.Duration
	now         func() time.Time
	lastSweep   atomic.Int64
	clients     syncx.Map[string, *client]
}

type GetClientKeyFunc func(r *http.Request) (string, error)

func (l *RateLimiter) Middleware(getClientKey GetClientKeyFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			clientKey, err := getClientKey(r)
			if err != nil {
				slog.ErrorContext(ctx, "could not retrieve client key", log.Error(errors.WithStack(err)))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			if !l.Allow(clientKey) {
				slog.WarnContext(ctx, "rate limit exceeded", slog.String("client", clientKey))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (l *RateLimiter) Allow(clientKey string) bool {
	now := l.now()

	l.sweep(now)

	c, _ := l.clients.LoadOrStore(clientKey, &client{limiter: rate.NewLimiter(l.rate, l.burst)})
	c.lastSeen.Store(now.UnixNano())

	return c.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (l *RateLimiter) Len() int {
	count := 0
	l.clients.Range(func(key string, c *client) bool {
		count++
		return true
	})

	return count
}

// sweep forgets the idle clients, at most once per idle timeout.
func (l *RateLimiter) sweep(now time.Time) {
	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(l.idleTimeout) {
		return
	}

	if !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}

	deadline := now.Add(-l.idleTimeout).UnixNano()

	l.clients.Range(func(key string, c *client) bool {
		if c.lastSeen.Load() < deadline {
			l.clients.Delete(key)
		}

		return true
	})
}

// RemoteAddr identifies clients by their remote host.
func RemoteAddr(r *http.Request) (string, error) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr, nil
	}

	return host, nil
}

type OptionFunc func(l *RateLimiter)

func WithIdleTimeout(timeout time.Duration) OptionFunc {
	return func(l *RateLimiter) {
		l.idleTimeout = timeout
	}
}

func New(rate rate.Limit, burst int, funcs ...OptionFunc) *RateLimiter {
	limiter := &RateLimiter{
		rate:        rate,
		burst:       burst,
		idleTimeout: DefaultIdleTimeout,
		now:         time.Now,
	}

	for _, fn := range funcs {
		fn(limiter)
	}

	return limiter
}
