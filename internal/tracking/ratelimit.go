package tracking

import (
	"net/http"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"github.com/SergeyParamoshkin/newsdesk/internal/errresponse"
	"github.com/SergeyParamoshkin/newsdesk/internal/geo"
)

// Limiter keeps one token bucket per client IP. The least recently seen
// clients are forgotten once size buckets exist.
type Limiter struct {
	mu      sync.Mutex
	buckets *lru.Cache[string, *rate.Limiter]
	limit   rate.Limit
	burst   int
}

func NewLimiter(rps float64, burst, size int) (*Limiter, error) {
	buckets, err := lru.New[string, *rate.Limiter](size)
	if err != nil {
		return nil, err
	}

	return &Limiter{buckets: buckets, limit: rate.Limit(rps), burst: burst}, nil
}

// Allow takes a token from the bucket of key.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	b, ok := l.buckets.Get(key)
	if !ok {
		b = rate.NewLimiter(l.limit, l.burst)
		l.buckets.Add(key, b)
	}
	l.mu.Unlock()

	return b.Allow()
}

// Middleware answers 429 once a client exhausts its bucket.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(geo.RemoteIP(r)) {
			w.Header().Set("Retry-After", "1")
			renderError(w, r, errresponse.ErrTooManyRequests)

			return
		}
		next.ServeHTTP(w, r)
	})
}
