package middleware

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicyYAML []byte

// policyFile is the on-disk shape of the rate limit policy.
type policyFile struct {
	Default string            `yaml:"default"`
	Classes map[string]string `yaml:"classes"`
}

type classLimit struct {
	limit rate.Limit
	burst int
}

// RateLimiter applies per-client-IP token buckets, with limits grouped
// into named classes (read, register, mutate, ...).
type RateLimiter struct {
	mu       sync.Mutex
	classes  map[string]classLimit
	fallback classLimit
	limiters map[string]*rate.Limiter
}

// NewRateLimiter builds a limiter from the embedded default policy.
func NewRateLimiter() (*RateLimiter, error) {
	return NewRateLimiterFromYAML(defaultPolicyYAML)
}

// NewRateLimiterFromYAML builds a limiter from a policy document.
func NewRateLimiterFromYAML(raw []byte) (*RateLimiter, error) {
	var file policyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse rate limit policy: %w", err)
	}

	fallback, err := parseLimit(file.Default)
	if err != nil {
		return nil, fmt.Errorf("default limit: %w", err)
	}

	classes := make(map[string]classLimit, len(file.Classes))
	for name, spec := range file.Classes {
		cl, err := parseLimit(spec)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", name, err)
		}
		classes[name] = cl
	}

	return &RateLimiter{
		classes:  classes,
		fallback: fallback,
		limiters: make(map[string]*rate.Limiter),
	}, nil
}

// parseLimit parses "50/minute" style specs.
func parseLimit(spec string) (classLimit, error) {
	parts := strings.SplitN(strings.TrimSpace(spec), "/", 2)
	if len(parts) != 2 {
		return classLimit{}, fmt.Errorf("invalid limit spec %q", spec)
	}
	count, err := strconv.Atoi(parts[0])
	if err != nil || count <= 0 {
		return classLimit{}, fmt.Errorf("invalid limit count in %q", spec)
	}

	var period time.Duration
	switch parts[1] {
	case "second":
		period = time.Second
	case "minute":
		period = time.Minute
	case "hour":
		period = time.Hour
	default:
		return classLimit{}, fmt.Errorf("invalid limit period in %q", spec)
	}

	return classLimit{
		limit: rate.Limit(float64(count) / period.Seconds()),
		burst: count,
	}, nil
}

func (rl *RateLimiter) getLimiter(class, ip string, cl classLimit) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	key := class + "|" + ip
	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(cl.limit, cl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Limit returns middleware enforcing the named class against the
// client IP. Unknown classes fall back to the default limit.
func (rl *RateLimiter) Limit(class string) func(next http.Handler) http.Handler {
	cl, ok := rl.classes[class]
	if !ok {
		cl = rl.fallback
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.getLimiter(class, clientIP(r), cl).Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"detail": "Rate limit exceeded"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
