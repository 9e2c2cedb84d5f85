// Package metrics exposes service instruments through a Prometheus scrape
// endpoint.
package metrics

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

type Metrics struct {
	provider *sdkmetric.MeterProvider
	handler  http.Handler

	ServerCompleted metric.Int64Counter
	SectionViews    metric.Int64Counter
	VideoSeconds    metric.Float64Histogram
	GeoCacheHits    metric.Int64Counter
}

// New registers the instruments of serviceName on a private registry.
func New(serviceName string) (*Metrics, error) {
	reg := prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	meter := provider.Meter(serviceName)

	m := &Metrics{
		provider: provider,
		handler:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	}

	if m.ServerCompleted, err = meter.Int64Counter("http/server/completed_count",
		metric.WithDescription("Count of completed requests, by HTTP method, route and response status"),
	); err != nil {
		return nil, err
	}
	if m.SectionViews, err = meter.Int64Counter("tracking/section_views",
		metric.WithDescription("Section view beacons, by whether they created a row"),
	); err != nil {
		return nil, err
	}
	if m.VideoSeconds, err = meter.Float64Histogram("video/generation_seconds",
		metric.WithDescription("Wall time of slideshow renders"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 30, 60, 120, 300),
	); err != nil {
		return nil, err
	}
	if m.GeoCacheHits, err = meter.Int64Counter("geo/cache_hits",
		metric.WithDescription("Geolocation lookups answered from the cache"),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Handler serves the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}

// GeoCacheHit is a geo.WithCacheHook callback.
func (m *Metrics) GeoCacheHit(ctx context.Context) {
	m.GeoCacheHits.Add(ctx, 1)
}

// Middleware counts completed requests by method, route pattern and status.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		m.ServerCompleted.Add(r.Context(), 1, metric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.String("route", route),
			attribute.String("status", strconv.Itoa(status)),
		))
	})
}

func (m *Metrics) Shutdown(ctx context.Context) error {
	return m.provider.Shutdown(ctx)
}
