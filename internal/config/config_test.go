package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_Addr(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected string
	}{
		{
			name:     "default bind",
			config:   Config{ServerAddress: "0.0.0.0", ServerPort: 3000},
			expected: "0.0.0.0:3000",
		},
		{
			name:     "loopback",
			config:   Config{ServerAddress: "127.0.0.1", ServerPort: 8080},
			expected: "127.0.0.1:8080",
		},
		{
			name:     "empty host",
			config:   Config{ServerAddress: "", ServerPort: 3000},
			expected: ":3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.Addr(); got != tt.expected {
				t.Errorf("Addr() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConfig_IsProduction(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		want        bool
	}{
		{"production", "production", true},
		{"local", "local", false},
		{"staging", "staging", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Environment: tt.environment}
			if got := cfg.IsProduction(); got != tt.want {
				t.Errorf("IsProduction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentConfig_Paths(t *testing.T) {
	c := ContentConfig{Dir: "content"}

	if got, want := c.DocsDir(), filepath.Join("content", "docs"); got != want {
		t.Errorf("DocsDir() = %q, want %q", got, want)
	}
	if got, want := c.CategoriesFile(), filepath.Join("content", "categories.yaml"); got != want {
		t.Errorf("CategoriesFile() = %q, want %q", got, want)
	}

	c.SiteFile = "site.yaml"
	if got, want := c.SitePath(), filepath.Join("content", "site.yaml"); got != want {
		t.Errorf("SitePath() = %q, want %q", got, want)
	}
	c.SiteFile = "/etc/aks-labs/site.yaml"
	if got := c.SitePath(); got != "/etc/aks-labs/site.yaml" {
		t.Errorf("SitePath() = %q, want absolute path kept", got)
	}

	custom := ContentConfig{Dir: "/srv/site/content"}
	if got, want := custom.DocsDir(), filepath.Join("/srv/site/content", "docs"); got != want {
		t.Errorf("DocsDir() = %q, want %q", got, want)
	}
}

func TestContentConfig_WatchDebounce(t *testing.T) {
	tests := []struct {
		name       string
		debounceMs int
		want       time.Duration
	}{
		{"default 500ms", 500, 500 * time.Millisecond},
		{"one second", 1000, time.Second},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ContentConfig{WatchDebounceMs: tt.debounceMs}
			if got := c.WatchDebounce(); got != tt.want {
				t.Errorf("WatchDebounce() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCORSConfig_AllowsAny(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		want    bool
	}{
		{"wildcard", []string{"*"}, true},
		{"wildcard among origins", []string{"https://aks-labs.dev", "*"}, true},
		{"explicit origins only", []string{"https://aks-labs.dev"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CORSConfig{AllowedOrigins: tt.origins}
			if got := c.AllowsAny(); got != tt.want {
				t.Errorf("AllowsAny() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "4100")
	t.Setenv("CONTENT_DIR", "/tmp/site-content")
	t.Setenv("CONTENT_WATCH", "false")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cfg, err := NewConfig(slog.Default())
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.ServerPort != 4100 {
		t.Errorf("ServerPort = %d, want 4100", cfg.ServerPort)
	}
	if cfg.Content.Dir != "/tmp/site-content" {
		t.Errorf("Content.Dir = %q, want /tmp/site-content", cfg.Content.Dir)
	}
	if cfg.Content.Watch {
		t.Error("Content.Watch should be false")
	}
	if cfg.Otel.Enabled() {
		t.Error("tracing should be disabled without an endpoint")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
}
