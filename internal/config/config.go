package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const ServiceName = "newsdesk"

// Config is the full runtime configuration of the service.
type Config struct {
	Addr        string `env:"NEWSDESK_ADDR" envDefault:":3333"`
	DiagAddr    string `env:"NEWSDESK_DIAG_ADDR" envDefault:":9999"`
	DatabaseURL string `env:"NEWSDESK_DATABASE_URL"`
	Env         string `env:"NEWSDESK_ENV" envDefault:"development"`
	LogLevel    string `env:"NEWSDESK_LOG_LEVEL" envDefault:"info"`
	Timezone    string `env:"NEWSDESK_TIMEZONE" envDefault:"Local"`

	VideoDir   string `env:"NEWSDESK_VIDEO_DIR" envDefault:"./public/temp_video"`
	FFmpegPath string `env:"NEWSDESK_FFMPEG_PATH" envDefault:"ffmpeg"`
	Narration  bool   `env:"NEWSDESK_NARRATION" envDefault:"false"`

	GeoEndpoint  string        `env:"NEWSDESK_GEO_ENDPOINT" envDefault:"https://ipapi.co"`
	GeoCacheSize int           `env:"NEWSDESK_GEO_CACHE_SIZE" envDefault:"1024"`
	GeoCacheTTL  time.Duration `env:"NEWSDESK_GEO_CACHE_TTL" envDefault:"1h"`

	TrackingRPS     float64 `env:"NEWSDESK_TRACKING_RPS" envDefault:"5"`
	TrackingBurst   int     `env:"NEWSDESK_TRACKING_BURST" envDefault:"20"`
	TrackingClients int     `env:"NEWSDESK_TRACKING_CLIENTS" envDefault:"10000"`
	TrustProxy      bool    `env:"NEWSDESK_TRUST_PROXY" envDefault:"false"`

	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	AnthropicModel  string `env:"NEWSDESK_ANTHROPIC_MODEL" envDefault:"claude-haiku-4-5"`
	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	TTSModel        string `env:"NEWSDESK_TTS_MODEL" envDefault:"gemini-2.5-flash-preview-tts"`
	TTSVoice        string `env:"NEWSDESK_TTS_VOICE" envDefault:"Kore"`
}

// Load reads an optional .env file and then parses the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Production reports whether the service runs in production mode.
func (c Config) Production() bool {
	return c.Env == "production"
}

// Location resolves the zone used for hour-of-day buckets.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}

	return loc, nil
}

// RequireDatabase fails when no database URL is configured.
func (c Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return errors.New("NEWSDESK_DATABASE_URL is required")
	}

	return nil
}
