// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Engine   EngineConfig
	Cache    CacheConfig
	Timeouts TimeoutConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// EngineConfig holds itinerary generation settings.
type EngineConfig struct {
	// BatchSize is the number of content items scored per batch
	BatchSize int `env:"ENGINE_BATCH_SIZE" envDefault:"25"`

	// MinScore is the score threshold below which candidates are dropped
	MinScore float64 `env:"ENGINE_MIN_SCORE" envDefault:"0.25"`

	// MaxActivitiesPerDay caps activities placed into one day plan
	MaxActivitiesPerDay int `env:"ENGINE_MAX_ACTIVITIES_PER_DAY" envDefault:"4"`

	// DayStart is the earliest schedulable time (HH:MM)
	DayStart string `env:"ENGINE_DAY_START" envDefault:"08:00"`

	// DayEnd is the latest schedulable time (HH:MM)
	DayEnd string `env:"ENGINE_DAY_END" envDefault:"21:00"`

	// ActivityBufferMinutes is the travel/rest buffer between activities
	ActivityBufferMinutes int `env:"ENGINE_ACTIVITY_BUFFER_MINUTES" envDefault:"30"`

	// CatalogDir is the directory holding catalog data files
	CatalogDir string `env:"ENGINE_CATALOG_DIR" envDefault:"data/catalog"`
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	TTL           time.Duration `env:"CACHE_TTL" envDefault:"30m"`
	MaxEntries    int           `env:"CACHE_MAX_ENTRIES" envDefault:"1000"`
	SweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL" envDefault:"5m"`
}

// TimeoutConfig holds timeout settings for itinerary generation.
type TimeoutConfig struct {
	GlobalGenerate time.Duration `env:"TIMEOUT_GLOBAL_GENERATE" envDefault:"10s"`
	PerSource      time.Duration `env:"TIMEOUT_PER_SOURCE" envDefault:"3s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Engine.BatchSize < 1 {
		return fmt.Errorf("ENGINE_BATCH_SIZE must be at least 1")
	}
	if cfg.Engine.MinScore < 0 || cfg.Engine.MinScore > 1 {
		return fmt.Errorf("ENGINE_MIN_SCORE must be in [0,1], got %g", cfg.Engine.MinScore)
	}
	if cfg.Engine.MaxActivitiesPerDay < 1 {
		return fmt.Errorf("ENGINE_MAX_ACTIVITIES_PER_DAY must be at least 1")
	}
	if cfg.Engine.ActivityBufferMinutes < 0 {
		return fmt.Errorf("ENGINE_ACTIVITY_BUFFER_MINUTES cannot be negative")
	}

	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	if cfg.Cache.MaxEntries < 1 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be at least 1")
	}
	if cfg.Cache.SweepInterval <= 0 {
		return fmt.Errorf("CACHE_SWEEP_INTERVAL must be positive")
	}

	if cfg.Timeouts.GlobalGenerate <= 0 {
		return fmt.Errorf("TIMEOUT_GLOBAL_GENERATE must be positive")
	}
	if cfg.Timeouts.PerSource <= 0 {
		return fmt.Errorf("TIMEOUT_PER_SOURCE must be positive")
	}
	if cfg.Timeouts.PerSource >= cfg.Timeouts.GlobalGenerate {
		return fmt.Errorf("TIMEOUT_PER_SOURCE (%s) should be less than TIMEOUT_GLOBAL_GENERATE (%s)",
			cfg.Timeouts.PerSource, cfg.Timeouts.GlobalGenerate)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
