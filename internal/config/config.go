package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"3000"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	Debug         bool   `env:"DEBUG" envDefault:"false"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Content settings
	Content ContentConfig

	// CORS settings for the JSON API
	CORS CORSConfig

	// OpenTelemetry settings
	Otel OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Addr returns the listen address in host:port form
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ContentConfig holds the content tree settings
type ContentConfig struct {
	// Dir is the root of the content tree (documents, categories, site file)
	Dir string `env:"CONTENT_DIR" envDefault:"content"`

	// SiteFile is the site metadata file (title, navbar, footer)
	SiteFile string `env:"SITE_CONFIG" envDefault:"site.yaml"`

	// Watch enables the filesystem watcher that reloads content on change
	Watch bool `env:"CONTENT_WATCH" envDefault:"true"`

	// WatchDebounceMs batches rapid editor saves into one reload
	WatchDebounceMs int `env:"CONTENT_WATCH_DEBOUNCE_MS" envDefault:"500"`
}

// DocsDir returns the directory holding the markdown documents
func (c *ContentConfig) DocsDir() string {
	return filepath.Join(c.Dir, "docs")
}

// CategoriesFile returns the category registry path
func (c *ContentConfig) CategoriesFile() string {
	return filepath.Join(c.Dir, "categories.yaml")
}

// SitePath returns the site metadata file location inside the content tree.
// An absolute SiteFile is used as-is.
func (c *ContentConfig) SitePath() string {
	if filepath.IsAbs(c.SiteFile) {
		return c.SiteFile
	}
	return filepath.Join(c.Dir, c.SiteFile)
}

// WatchDebounce returns the watcher debounce as a Duration
func (c *ContentConfig) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMs) * time.Millisecond
}

// CORSConfig holds cross-origin settings for the JSON API
type CORSConfig struct {
	// AllowedOrigins lists origins allowed to call /api; "*" allows any
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

// AllowsAny reports whether any origin may call the API
func (c *CORSConfig) AllowsAny() bool {
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("content_dir", cfg.Content.Dir),
		slog.Bool("content_watch", cfg.Content.Watch),
	)

	return cfg, nil
}
