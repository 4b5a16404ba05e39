package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
)

const (
	msgRateLimited = "слишком много запросов, попробуйте позже"

	defaultIdleTTL = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов с одного адреса.
// Адреса без запросов дольше idleTTL удаляются из памяти.
type RateLimiter struct {
	rps        rate.Limit
	burst      int
	trustProxy bool
	idleTTL    time.Duration
	now        func() time.Time

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastSweep time.Time

	logger Logger
}

// RateLimiterOption настройка RateLimiter
type RateLimiterOption func(*RateLimiter)

// WithTrustedProxy брать адрес клиента из X-Forwarded-For.
// Включать только за доверенным reverse proxy, иначе заголовок подделывается.
func WithTrustedProxy(trust bool) RateLimiterOption {
	return func(l *RateLimiter) {
		l.trustProxy = trust
	}
}

// WithIdleTTL время, после которого неактивный адрес забывается
func WithIdleTTL(ttl time.Duration) RateLimiterOption {
	return func(l *RateLimiter) {
		if ttl > 0 {
			l.idleTTL = ttl
		}
	}
}

// NewRateLimiter rps <= 0 отключает ограничение
func NewRateLimiter(rps float64, burst int, logger Logger, opts ...RateLimiterOption) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	l := &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		idleTTL:  defaultIdleTTL,
		now:      time.Now,
		visitors: make(map[string]*visitor),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.now()
	return l
}

func (l *RateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idleTTL {
		l.sweepLocked(now)
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (l *RateLimiter) sweepLocked(now time.Time) {
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) >= l.idleTTL {
			delete(l.visitors, ip)
		}
	}
	l.lastSweep = now
}

func (l *RateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}

// Middleware возвращает mux middleware
func (l *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if l.rps <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, l.trustProxy)
			if !l.limiter(ip).Allow() {
				l.logger.Warn("%s %s - Rate limit exceeded: ip=%s, request_id=%s",
					r.Method, r.URL.Path, ip, RequestIDFromContext(r.Context()))
				handlers.RespondTooManyRequests(w, msgRateLimited)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP X-Forwarded-For учитывается только при trustProxy
func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			if ip := strings.TrimSpace(strings.Split(fwd, ",")[0]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
