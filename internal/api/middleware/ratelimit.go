package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/hartvaneindhoven/HVE-BookingService/internal/api/handlers"
)

const limiterIdleTTL = 10 * time.Minute

// RateLimiter ограничивает частоту запросов по IP клиента. Применяется к
// мутирующему эндпоинту создания бронирования.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter создает лимитер: perMinute запросов в минуту с каждого IP
func NewRateLimiter(perMinute int) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
	}

	go rl.cleanup()

	return rl
}

// Handler оборачивает next проверкой лимита
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			handlers.RespondError(w, http.StatusTooManyRequests, "too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.limiters[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[ip] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter.Allow()
}

// cleanup выбрасывает лимитеры IP, которые давно не появлялись
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(limiterIdleTTL)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, entry := range rl.limiters {
			if time.Since(entry.lastSeen) > limiterIdleTTL {
				delete(rl.limiters, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// clientIP извлекает IP клиента из запроса
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
