package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-draft-keeper/internal/utils"
)

const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiter keeps one token bucket per client address. It is the only
// in-process state shared between requests.
type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*limiterEntry

	limit rate.Limit
	burst int
	now   func() time.Time
}

// newClientLimiter allows perMinute requests per client; zero or less
// disables limiting.
func newClientLimiter(perMinute int) *clientLimiter {
	if perMinute <= 0 {
		return &clientLimiter{limit: rate.Inf, clients: map[string]*limiterEntry{}, now: time.Now}
	}

	return &clientLimiter{
		clients: map[string]*limiterEntry{},
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   perMinute,
		now:     time.Now,
	}
}

func (l *clientLimiter) Allow(client string) bool {
	if l.limit == rate.Inf {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, e := range l.clients {
		if now.Sub(e.lastSeen) > limiterIdleTTL {
			delete(l.clients, key)
		}
	}

	e, ok := l.clients[client]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[client] = e
	}
	e.lastSeen = now

	return e.limiter.AllowN(now, 1)
}

// limitAnonymous rate limits requests without an editor session. Editors
// are never limited.
func (h *Handler) limitAnonymous(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		if !h.limiter.Allow(clientAddress(r)) {
			writeError(w, r, ErrTooManyRequests, "anonymous submission rate limited")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
