// Package geo resolves client IPs to a location document using an
// ipapi.co compatible lookup service.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/SergeyParamoshkin/newsdesk/internal/model"
)

// ErrNoClientIP is returned when a request carries no forwarding headers.
var ErrNoClientIP = errors.New("could not determine IP address")

// ClientIP takes the first X-Forwarded-For hop, then X-Real-IP.
func ClientIP(r *http.Request) (string, error) {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if ip := strings.TrimSpace(strings.Split(fwd, ",")[0]); ip != "" && ip != "unknown" {
			return ip, nil
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" && ip != "unknown" {
		return ip, nil
	}

	return "", ErrNoClientIP
}

// RemoteIP is the host of the connection address. Forwarding headers are
// ignored; behind a trusted proxy middleware.RealIP rewrites RemoteAddr first.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

// Client looks up and caches locations per IP.
type Client struct {
	endpoint string
	http     *http.Client
	cache    *expirable.LRU[string, model.Location]
	onHit    func(ctx context.Context)
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(g *Client) { g.http = c }
}

// WithCacheHook is called on every cache hit.
func WithCacheHook(fn func(ctx context.Context)) Option {
	return func(g *Client) { g.onHit = fn }
}

func NewClient(endpoint string, cacheSize int, ttl time.Duration, opts ...Option) *Client {
	if cacheSize <= 0 {
		cacheSize = 1
	}
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     &http.Client{Timeout: 5 * time.Second},
		cache:    expirable.NewLRU[string, model.Location](cacheSize, nil, ttl),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Lookup returns the location document for ip as served by the upstream.
func (c *Client) Lookup(ctx context.Context, ip string) (model.Location, error) {
	if loc, ok := c.cache.Get(ip); ok {
		if c.onHit != nil {
			c.onHit(ctx)
		}
		return loc, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/"+url.PathEscape(ip)+"/json/", nil)
	if err != nil {
		return nil, fmt.Errorf("build geolocation request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch geolocation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("fetch geolocation: upstream status %d", resp.StatusCode)
	}

	var loc model.Location
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&loc); err != nil {
		return nil, fmt.Errorf("decode geolocation: %w", err)
	}

	// upstream errors (reserved ranges, quota) are passed through uncached
	if failed, _ := loc["error"].(bool); !failed && resp.StatusCode == http.StatusOK {
		c.cache.Add(ip, loc)
	}

	return loc, nil
}
