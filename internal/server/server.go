package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"

	"github.com/aks-labs/website/assets"
	"github.com/aks-labs/website/domain/metrics"
	"github.com/aks-labs/website/internal/components"
	"github.com/aks-labs/website/internal/config"
	"github.com/aks-labs/website/internal/site"
	"github.com/aks-labs/website/pkg/apperror"
	"github.com/aks-labs/website/pkg/logger"
)

var Module = fx.Module("server",
	fx.Provide(NewEcho),
	fx.Invoke(StartServer),
)

// EchoParams are the dependencies for creating an Echo instance
type EchoParams struct {
	fx.In

	Config     *config.Config
	Log        *slog.Logger
	HTTPLogger *logger.HTTPLogger
	Site       *site.Site
	Metrics    *metrics.Metrics
}

// NewEcho creates and configures an Echo instance
func NewEcho(p EchoParams) *echo.Echo {
	cfg := p.Config
	log := p.Log
	httpLogger := p.HTTPLogger

	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = !cfg.Debug

	// JSON errors for the API, a rendered page for the browser
	e.HTTPErrorHandler = htmlAwareErrorHandler(p.Site, log)

	// Pre-middleware
	e.Pre(middleware.RemoveTrailingSlash())

	// Middleware stack
	e.Use(
		middleware.CORSWithConfig(corsConfig(cfg)),

		// Request ID
		middleware.RequestID(),

		// Request logging (skip probes, metrics and static files)
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			Skipper: func(c echo.Context) bool {
				path := c.Request().URL.Path
				if path == "/health" || path == "/healthz" || path == "/ready" || path == "/metrics" {
					return true
				}
				return strings.HasPrefix(path, "/static/")
			},
			LogURI:       true,
			LogStatus:    true,
			LogLatency:   true,
			LogError:     true,
			LogMethod:    true,
			LogRequestID: true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				attrs := []any{
					slog.String("method", v.Method),
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.Duration("latency", v.Latency),
					slog.String("request_id", v.RequestID),
				}
				if v.Error != nil {
					attrs = append(attrs, logger.Error(v.Error))
					log.Error("request failed", attrs...)
				} else {
					log.Info("request", attrs...)
				}

				// Also log to HTTP log file
				req := c.Request()
				ip := c.RealIP()
				userAgent := req.UserAgent()
				httpLogger.LogRequest(ip, v.Method, v.URI, v.Status, v.Latency, userAgent, v.RequestID)

				return nil
			},
		}),

		// Recover from panics
		middleware.RecoverWithConfig(middleware.RecoverConfig{
			LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
				log.Error("panic recovered",
					logger.Error(err),
					slog.String("stack", string(stack)),
				)
				return nil
			},
		}),

		// Request counts and latencies per route
		p.Metrics.Middleware(),
	)

	registerStatic(e, cfg)

	return e
}

// corsConfig opens the read-only API to the configured origins. The site
// serves no credentialed endpoints, so only safe methods are allowed.
func corsConfig(cfg *config.Config) middleware.CORSConfig {
	allowMethods := []string{http.MethodGet, http.MethodHead, http.MethodOptions}
	allowHeaders := []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept}

	if cfg.CORS.AllowsAny() {
		return middleware.CORSConfig{
			AllowOriginFunc: func(origin string) (bool, error) {
				return true, nil
			},
			AllowMethods: allowMethods,
			AllowHeaders: allowHeaders,
		}
	}

	return middleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: allowMethods,
		AllowHeaders: allowHeaders,
	}
}

// registerStatic serves the embedded asset tree under /static. Production
// responses carry a cache header; development stays uncached so edits show
// up on refresh.
func registerStatic(e *echo.Echo, cfg *config.Config) {
	cacheControl := "no-cache"
	if cfg.IsProduction() {
		cacheControl = "public, max-age=3600"
	}

	g := e.Group("/static", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Cache-Control", cacheControl)
			return next(c)
		}
	})
	g.StaticFS("/", assets.Static)
}

// htmlAwareErrorHandler renders the error page for browser navigation and
// falls through to the JSON handler for everything else.
func htmlAwareErrorHandler(s *site.Site, log *slog.Logger) func(error, echo.Context) {
	jsonHandler := apperror.HTTPErrorHandler(log)

	return func(err error, c echo.Context) {
		if !wantsHTML(c) {
			jsonHandler(err, c)
			return
		}

		if c.Response().Committed {
			return
		}

		status, body := apperror.Classify(err)
		message := http.StatusText(status)
		if m, ok := body["message"].(string); ok && m != "" {
			message = m
		}

		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				slog.Int("status", status),
				slog.String("path", c.Request().URL.Path),
				logger.Error(err),
			)
			// Internals stay out of the page
			message = http.StatusText(status)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}

		page := components.Layout(s,
			components.PageConfig{Title: message},
			components.ErrorPage(status, message),
		)

		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		c.Response().WriteHeader(status)
		if rerr := page.Render(c.Response()); rerr != nil {
			log.Error("failed to render error page", logger.Error(rerr))
		}
	}
}

// wantsHTML reports whether the client is a browser navigating the site.
// API and scrape endpoints always answer in JSON.
func wantsHTML(c echo.Context) bool {
	path := c.Request().URL.Path
	if strings.HasPrefix(path, "/api/") || path == "/metrics" {
		return false
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, e *echo.Echo, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
			)

			// Start server in goroutine
			go func() {
				if err := e.StartServer(server); err != nil && err != http.ErrServerClosed {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			// Create shutdown context with timeout
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return e.Shutdown(shutdownCtx)
		},
	})
}
