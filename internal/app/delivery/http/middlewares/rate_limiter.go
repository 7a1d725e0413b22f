package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter keeps a token bucket per client IP and temporarily bans
// addresses that exhaust theirs. It backs up the coarser httprate limit:
// once an address trips it, requests are refused for the whole ban window
// instead of trickling through as the bucket refills.
type RateLimiter struct {
	mu          sync.Mutex
	buckets     map[string]*rate.Limiter
	bannedUntil map[string]time.Time
	perSecond   int
	banFor      time.Duration
}

func NewRateLimiter(requestsPerSecond int, banFor time.Duration) *RateLimiter {
	return &RateLimiter{
		buckets:     make(map[string]*rate.Limiter),
		bannedUntil: make(map[string]time.Time),
		perSecond:   requestsPerSecond,
		banFor:      banFor,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		rl.mu.Lock()
		if until, banned := rl.bannedUntil[ip]; banned {
			if time.Now().Before(until) {
				rl.mu.Unlock()
				http.Error(w, "Too many requests, you are temporarily blocked.", http.StatusTooManyRequests)
				return
			}
			delete(rl.bannedUntil, ip)
		}

		bucket, exists := rl.buckets[ip]
		if !exists {
			bucket = rate.NewLimiter(rate.Limit(rl.perSecond), rl.perSecond)
			rl.buckets[ip] = bucket
		}
		rl.mu.Unlock()

		if !bucket.Allow() {
			rl.mu.Lock()
			rl.bannedUntil[ip] = time.Now().Add(rl.banFor)
			rl.mu.Unlock()

			http.Error(w, "Too many requests, you are temporarily blocked.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
