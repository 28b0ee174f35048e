package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/jobboard/internal/logger"
)

// AuthMiddleware requires the API key on every request it wraps
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			providedKey := r.Header.Get(HeaderAPIKey)

			// Constant time comparison
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipCounter counts events for one IP within a fixed window
type ipCounter struct {
	count       int
	windowStart time.Time
}

// SuspiciousActivityDetector tracks failed auth and request rate per IP.
// Counters live in bounded LRUs so idle IPs are evicted.
type SuspiciousActivityDetector struct {
	mu         sync.Mutex
	window     time.Duration
	maxPerIP   int
	failedAuth *expirable.LRU[string, *ipCounter]
	requests   *expirable.LRU[string, *ipCounter]
	now        func() time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return newDetector(DetectorWindow, MaxRequestsPerWindow, time.Now)
}

func newDetector(window time.Duration, maxPerIP int, now func() time.Time) *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		window:     window,
		maxPerIP:   maxPerIP,
		failedAuth: expirable.NewLRU[string, *ipCounter](DetectorMaxTrackedIPs, nil, window),
		requests:   expirable.NewLRU[string, *ipCounter](DetectorMaxTrackedIPs, nil, window),
		now:        now,
	}
}

// incr bumps the counter for ip, starting a new window when the previous one has elapsed.
// Caller must hold the mutex.
func (s *SuspiciousActivityDetector) incr(counters *expirable.LRU[string, *ipCounter], ip string) int {
	now := s.now()
	c, ok := counters.Get(ip)
	if !ok || now.Sub(c.windowStart) > s.window {
		c = &ipCounter{windowStart: now}
		counters.Add(ip, c)
	}
	c.count++
	return c.count
}

// RecordFailedAuth records a failed authentication attempt
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if count := s.incr(s.failedAuth, ip); count >= FailedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// RecordRequest records a request and returns false once the IP exceeds its window budget
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := s.incr(s.requests, ip)
	if count > s.maxPerIP {
		if count%HighRateLogEveryNth == 0 {
			slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
		}
		return false
	}
	return true
}

// RateLimitMiddleware rejects clients over the detector's request budget
func RateLimitMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	if isTrusted {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost entry is the hop that reached our trusted proxy
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
