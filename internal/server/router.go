// Package server assembles the HTTP routers of the service.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/newsdesk/internal/ai"
	"github.com/SergeyParamoshkin/newsdesk/internal/analytics"
	"github.com/SergeyParamoshkin/newsdesk/internal/article"
	"github.com/SergeyParamoshkin/newsdesk/internal/logging"
	"github.com/SergeyParamoshkin/newsdesk/internal/metrics"
	"github.com/SergeyParamoshkin/newsdesk/internal/seed"
	"github.com/SergeyParamoshkin/newsdesk/internal/store"
	"github.com/SergeyParamoshkin/newsdesk/internal/tracking"
	"github.com/SergeyParamoshkin/newsdesk/internal/user"
	"github.com/SergeyParamoshkin/newsdesk/internal/video"
)

// Deps are the collaborators behind the public API.
type Deps struct {
	Logger  *zap.SugaredLogger
	Store   *store.Store
	Metrics *metrics.Metrics

	Articles  *article.API
	Users     *user.API
	Tracking  *tracking.API
	Limiter   *tracking.Limiter
	Reports   *analytics.Service
	Assistant *ai.API
	Videos    *video.API
	VideoDir  string

	// TrustProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Only enable it behind a proxy that sets those headers itself.
	TrustProxy bool
}

// NewRouter builds the public API router.
func NewRouter(d Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	if d.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(logging.Middleware(d.Logger))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}
	r.Use(middleware.URLFormat)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("root.")); err != nil {
			logging.FromContext(r.Context()).Errorw(err.Error())
		}
	})

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Debugw("ping")
		if _, err := w.Write([]byte("pong")); err != nil {
			logging.FromContext(r.Context()).Errorw(err.Error())
		}
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/articles", d.Articles.Routes)
		r.Post("/anonymous-user", d.Users.Identify)

		// beacons fired by every page view
		r.Group(func(r chi.Router) {
			if d.Limiter != nil {
				r.Use(d.Limiter.Middleware)
			}
			r.Post("/article-views", d.Articles.CountView)
			r.Get("/geolocation", d.Tracking.Geolocation)
			r.Post("/user-logs", d.Tracking.CreateUserLog)
			r.Post("/section-tracking", d.Tracking.TrackSection)
		})

		r.Get("/analytics/{articleID}", d.Reports.GetVisits)
		r.Get("/section-statistics/{articleID}", d.Reports.GetSections)

		r.Post("/ai/summary", d.Assistant.Summary)
		r.Post("/ai/insights", d.Assistant.Insights)
		r.Post("/generate-video", d.Videos.Generate)

		r.Post("/seed", seed.Handler(d.Store))
	})

	FileServer(r, "/videos", http.Dir(d.VideoDir))

	return r
}

// NewDiagRouter serves metrics and health on the diagnostics port.
func NewDiagRouter(m *metrics.Metrics, s *store.Store) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if s != nil {
			if err := s.Ping(r.Context()); err != nil {
				http.Error(w, "database unavailable", http.StatusServiceUnavailable)

				return
			}
		}
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
