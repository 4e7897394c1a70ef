// Package main provides the entry point for the documentation site server.
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/aks-labs/website/domain/docs"
	"github.com/aks-labs/website/domain/health"
	"github.com/aks-labs/website/domain/metrics"
	"github.com/aks-labs/website/domain/pages"
	"github.com/aks-labs/website/domain/tracing"
	"github.com/aks-labs/website/internal/config"
	"github.com/aks-labs/website/internal/server"
	"github.com/aks-labs/website/internal/site"
	"github.com/aks-labs/website/pkg/logger"
)

func main() {
	// Load .env files if present (for local development)
	// Note: Load() won't overwrite existing vars, Overload() will
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		// Logging
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		server.Module,
		tracing.Module,

		// Site metadata (title, navbar, footer)
		site.Module,

		// Prometheus registry and /metrics
		metrics.Module,

		// Domain modules
		health.Module,
		docs.Module,
		pages.Module,
	).Run()
}
