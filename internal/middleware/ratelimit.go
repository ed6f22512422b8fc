package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/onerilhan/bookkeeping-api/internal/middleware/errors"
)

// RateLimitConfig rate limiting ayarları
type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
	SkipPaths         []string
	IdleTTL           time.Duration // Bu süre görülmeyen IP'lerin limiter'ı silinir
	TrustedProxies    []string      // boşsa her zaman RemoteAddr kullanılır
}

// ipLimiter tek bir IP için rate limiter
type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter IP başına token bucket uygular.
// Arka plan goroutine'i yok; eski kayıtlar istek sırasında süpürülür.
type RateLimiter struct {
	config    *RateLimitConfig
	responder *ErrorResponder
	limiters  map[string]*ipLimiter
	lastSweep time.Time
	mutex     sync.Mutex
	now       func() time.Time
}

// NewRateLimiter yeni rate limiter oluşturur
func NewRateLimiter(config *RateLimitConfig, responder *ErrorResponder) *RateLimiter {
	if config.IdleTTL == 0 {
		config.IdleTTL = 30 * time.Minute
	}
	return &RateLimiter{
		config:    config,
		responder: responder,
		limiters:  make(map[string]*ipLimiter),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Handler rate limiting middleware handler döner
func (rl *RateLimiter) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rl.config.RequestsPerMinute <= 0 || contains(rl.config.SkipPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r, rl.config.TrustedProxies)
			limiter := rl.limiterFor(ip)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.config.RequestsPerMinute))
			if !limiter.Allow() {
				log.Warn().Str("client_ip", ip).Str("path", r.URL.Path).Msg("Request blocked - rate limit exceeded")
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", "60")
				rl.responder.Respond(w, r, &errors.HTTPError{
					StatusCode: http.StatusTooManyRequests,
					ErrorCode:  errors.CodeRateLimited,
					Message:    "Çok fazla istek. Lütfen daha sonra tekrar deneyin.",
					Extra: map[string]interface{}{
						"limit_per_minute": rl.config.RequestsPerMinute,
					},
				})
				return
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))

			next.ServeHTTP(w, r)
		})
	}
}

// limiterFor IP'nin limiter'ını getirir, yoksa oluşturur
func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > rl.config.IdleTTL {
		for key, entry := range rl.limiters {
			if now.Sub(entry.lastSeen) > rl.config.IdleTTL {
				delete(rl.limiters, key)
			}
		}
		rl.lastSweep = now
	}

	entry, exists := rl.limiters[ip]
	if !exists {
		every := rate.Every(time.Minute / time.Duration(rl.config.RequestsPerMinute))
		entry = &ipLimiter{limiter: rate.NewLimiter(every, rl.config.Burst)}
		rl.limiters[ip] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}
