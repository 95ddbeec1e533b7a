package middleware

import (
	"encoding/json"
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"beatsite/internal/logging"
	"beatsite/internal/metrics"
	"beatsite/internal/notify"

	"golang.org/x/time/rate"
)

// RateLimitConfig holds configuration for the per-client rate limiter
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per client. Zero or less disables limiting.
	RequestsPerSecond float64
	// Burst is how many requests a client may make at once.
	Burst int
	// IdleTTL is how long an unused client limiter is kept.
	IdleTTL time.Duration
	// TrustedProxies lists addresses or CIDR prefixes whose X-Forwarded-For
	// and X-Real-IP headers are believed. Everyone else is keyed by RemoteAddr.
	TrustedProxies []string
}

// RateLimitMessage is the toast shown to a client that was rejected.
const RateLimitMessage = "Too many requests. Please wait a moment and try again."

// rateLimitResponse is the 429 body. It carries a notification so the page
// can show it the same way it shows form results.
type rateLimitResponse struct {
	Error        string              `json:"error"`
	Notification notify.Notification `json:"notification"`
}

// DefaultRateLimitConfig allows one form submission per second with a burst of three.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 1,
		Burst:             3,
		IdleTTL:           10 * time.Minute,
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter tracks one token bucket per client IP.
type RateLimiter struct {
	config  RateLimitConfig
	trusted []netip.Prefix
	now     func() time.Time

	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time
}

// NewRateLimiter creates a limiter from config, filling in defaults for unset fields.
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.Burst <= 0 {
		config.Burst = 1
	}
	if config.IdleTTL <= 0 {
		config.IdleTTL = DefaultRateLimitConfig().IdleTTL
	}
	return &RateLimiter{
		config:  config,
		trusted: parseTrustedProxies(config.TrustedProxies),
		now:     time.Now,
		clients: make(map[string]*clientLimiter),
	}
}

// parseTrustedProxies accepts bare addresses and CIDR prefixes. Bad entries are
// logged and skipped.
func parseTrustedProxies(entries []string) []netip.Prefix {
	var prefixes []netip.Prefix
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			logging.Warn("Ignoring invalid trusted proxy %q", entry)
			continue
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes
}

// clientKey identifies the caller by its connection address. Forwarding
// headers are only used when the connection comes from a trusted proxy, and
// then the nearest hop that is not itself a trusted proxy wins.
func (rl *RateLimiter) clientKey(r *http.Request) string {
	host := remoteHost(r.RemoteAddr)
	if !rl.isTrusted(host) {
		return host
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if hop != "" && !rl.isTrusted(hop) {
				return hop
			}
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	return host
}

func (rl *RateLimiter) isTrusted(host string) bool {
	if len(rl.trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range rl.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteHost(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}

// Allow reports whether the client may proceed now. When it may not, the
// returned duration is how long until a token is available.
func (rl *RateLimiter) Allow(client string) (bool, time.Duration) {
	if rl.config.RequestsPerSecond <= 0 {
		return true, 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	c, ok := rl.clients[client]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rl.config.RequestsPerSecond), rl.config.Burst)}
		rl.clients[client] = c
	}
	c.lastSeen = now

	if c.limiter.AllowN(now, 1) {
		return true, 0
	}
	missing := 1 - c.limiter.TokensAt(now)
	return false, time.Duration(missing / rl.config.RequestsPerSecond * float64(time.Second))
}

// Clients returns how many clients are being tracked.
func (rl *RateLimiter) Clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// sweep drops idle clients at most once per IdleTTL. Callers hold mu.
func (rl *RateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < rl.config.IdleTTL {
		return
	}
	rl.lastSweep = now
	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) >= rl.config.IdleTTL {
			delete(rl.clients, key)
		}
	}
}

// Middleware rejects over-limit requests with 429 and a Retry-After header.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := rl.clientKey(r)
		ok, retryAfter := rl.Allow(client)
		if ok {
			next.ServeHTTP(w, r)
			return
		}

		metrics.HTTPRateLimited.WithLabelValues(r.URL.Path).Inc()
		logging.Debug("rate limited %s on %s", sanitizeLogField(client), sanitizeLogField(r.URL.Path))

		if retryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		body := rateLimitResponse{
			Error:        "Too many requests",
			Notification: notify.New(RateLimitMessage, notify.Error, rl.now()),
		}
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logging.Error("failed to encode rate limit response: %v", err)
		}
	})
}
