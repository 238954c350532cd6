package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// maxCommentsLimit is the hard upper bound of the YouTube Data API
// commentThreads.list maxResults parameter.
const maxCommentsLimit = 100

type Config struct {
	AppEnv        string `env:"APP_ENV" default:"development"`
	Port          string `env:"PORT" default:"8080"`
	YouTubeAPIKey string `env:"YOUTUBE_API_KEY"`
	MaxComments   int    `env:"MAX_COMMENTS" default:"100"`
	LogLevel      string `env:"LOG_LEVEL" default:"info"`
	LogFormat     string `env:"LOG_FORMAT" default:"text"`

	AnalyzeRatePerSecond float64 `env:"ANALYZE_RATE" default:"1"`
	AnalyzeBurst         int     `env:"ANALYZE_BURST" default:"5"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"YOUTUBE_API_KEY": cfg.YouTubeAPIKey,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if cfg.MaxComments < 1 {
		slog.Warn("MAX_COMMENTS below minimum, clamping", "value", cfg.MaxComments, "min", 1)
		cfg.MaxComments = 1
	}
	if cfg.MaxComments > maxCommentsLimit {
		slog.Warn("MAX_COMMENTS above API limit, clamping", "value", cfg.MaxComments, "max", maxCommentsLimit)
		cfg.MaxComments = maxCommentsLimit
	}

	if cfg.AnalyzeRatePerSecond <= 0 {
		return fmt.Errorf("ANALYZE_RATE must be positive, got %v", cfg.AnalyzeRatePerSecond)
	}
	if cfg.AnalyzeBurst < 1 {
		return fmt.Errorf("ANALYZE_BURST must be at least 1, got %d", cfg.AnalyzeBurst)
	}

	return nil
}
