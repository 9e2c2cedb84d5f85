package main

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/SergeyParamoshkin/newsdesk/internal/ai"
	"github.com/SergeyParamoshkin/newsdesk/internal/analytics"
	"github.com/SergeyParamoshkin/newsdesk/internal/article"
	"github.com/SergeyParamoshkin/newsdesk/internal/config"
	"github.com/SergeyParamoshkin/newsdesk/internal/geo"
	"github.com/SergeyParamoshkin/newsdesk/internal/logging"
	"github.com/SergeyParamoshkin/newsdesk/internal/metrics"
	"github.com/SergeyParamoshkin/newsdesk/internal/server"
	"github.com/SergeyParamoshkin/newsdesk/internal/store"
	"github.com/SergeyParamoshkin/newsdesk/internal/tracking"
	"github.com/SergeyParamoshkin/newsdesk/internal/user"
	"github.com/SergeyParamoshkin/newsdesk/internal/video"
)

type App struct {
	config      config.Config
	logger      *zap.Logger
	sugarLogger *zap.SugaredLogger
}

func newApp(cfg config.Config) (*App, error) {
	logger, err := logging.New(cfg.Production(), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return &App{config: cfg, logger: logger, sugarLogger: logger.Sugar()}, nil
}

// openStore connects to Postgres. The returned func closes the pool.
func (a *App) openStore(ctx context.Context) (*store.Store, func(), error) {
	if err := a.config.RequireDatabase(); err != nil {
		return nil, nil, err
	}

	pool, err := store.Open(ctx, a.config.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	return store.New(pool), pool.Close, nil
}

// router wires every API component onto s. m may be nil.
func (a *App) router(ctx context.Context, s *store.Store, m *metrics.Metrics) (chi.Router, error) {
	cfg := a.config

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	limiter, err := tracking.NewLimiter(cfg.TrackingRPS, cfg.TrackingBurst, cfg.TrackingClients)
	if err != nil {
		return nil, fmt.Errorf("build rate limiter: %w", err)
	}

	var geoOpts []geo.Option
	var trackingOpts []tracking.Option
	videoOpts := []video.Option{video.WithLogger(a.sugarLogger.Named("video"))}
	if m != nil {
		geoOpts = append(geoOpts, geo.WithCacheHook(m.GeoCacheHit))
		trackingOpts = append(trackingOpts, tracking.WithSectionCounter(m.SectionViews))
		videoOpts = append(videoOpts, video.WithDurationHistogram(m.VideoSeconds))
	}

	var (
		assistant *ai.Assistant
		scripter  video.Scripter = ai.Paragraphs{}
	)
	if cfg.AnthropicAPIKey != "" {
		assistant = ai.NewAssistant(ai.NewAnthropic(cfg.AnthropicAPIKey, cfg.AnthropicModel))
		scripter = assistant
	} else {
		a.sugarLogger.Warnw("ANTHROPIC_API_KEY not set, AI endpoints disabled and slideshows use article paragraphs")
	}

	if cfg.Narration {
		if cfg.GeminiAPIKey == "" {
			a.sugarLogger.Warnw("narration enabled but GEMINI_API_KEY not set, videos will be silent")
		} else {
			speaker, err := ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.TTSModel, cfg.TTSVoice)
			if err != nil {
				return nil, err
			}
			videoOpts = append(videoOpts, video.WithSpeaker(speaker))
		}
	}

	generator := video.NewGenerator(scripter, cfg.VideoDir, cfg.FFmpegPath, videoOpts...)

	return server.NewRouter(server.Deps{
		Logger:    a.sugarLogger,
		Store:     s,
		Metrics:   m,
		Articles:  article.NewAPI(s),
		Users:     user.NewAPI(s, cfg.Production()),
		Tracking:  tracking.NewAPI(s, geo.NewClient(cfg.GeoEndpoint, cfg.GeoCacheSize, cfg.GeoCacheTTL, geoOpts...), trackingOpts...),
		Limiter:   limiter,
		Reports:   analytics.NewService(s, loc),
		Assistant: ai.NewAPI(assistant),
		Videos:    video.NewAPI(generator),
		VideoDir:  cfg.VideoDir,

		TrustProxy: cfg.TrustProxy,
	}), nil
}
