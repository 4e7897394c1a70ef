// Package testutil provides the in-process server harness and HTTP helpers
// the end-to-end tests run against.
package testutil

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/aks-labs/website/domain/docs"
	"github.com/aks-labs/website/domain/health"
	"github.com/aks-labs/website/domain/metrics"
	"github.com/aks-labs/website/domain/pages"
	"github.com/aks-labs/website/internal/config"
	"github.com/aks-labs/website/internal/server"
	"github.com/aks-labs/website/internal/site"
	"github.com/aks-labs/website/pkg/logger"
)

// TestServer wires the full HTTP surface over a content directory using the
// same middleware stack and routes as the real binary.
type TestServer struct {
	Echo    *echo.Echo
	Config  *config.Config
	Site    *site.Site
	Docs    *docs.Service
	Metrics *metrics.Metrics
	Log     *slog.Logger
}

// NewTestServer creates a test server serving contentDir.
func NewTestServer(contentDir string) (*TestServer, error) {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := &config.Config{
		ServerPort:  3000,
		Environment: "test",
		Content: config.ContentConfig{
			Dir:      contentDir,
			SiteFile: "site.yaml",
		},
	}

	m := metrics.New()

	svc, err := docs.NewService(cfg, log, m)
	if err != nil {
		return nil, err
	}

	s, err := site.Load(cfg.Content.SitePath())
	if err != nil {
		return nil, err
	}

	e := server.NewEcho(server.EchoParams{
		Config:     cfg,
		Log:        log,
		HTTPLogger: &logger.HTTPLogger{},
		Site:       s,
		Metrics:    m,
	})

	metrics.RegisterRoutes(e, m)
	health.RegisterRoutes(e, health.NewHandler(svc, cfg))
	docs.RegisterRoutes(e, docs.NewHandler(svc), log)
	pages.RegisterRoutes(e, pages.NewHandler(s, svc), log)

	return &TestServer{
		Echo:    e,
		Config:  cfg,
		Site:    s,
		Docs:    svc,
		Metrics: m,
		Log:     log,
	}, nil
}

// Request performs an HTTP request against the test server
func (s *TestServer) Request(method, path string, opts ...RequestOption) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)

	for _, opt := range opts {
		opt(req)
	}

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

// GET performs a GET request
func (s *TestServer) GET(path string, opts ...RequestOption) *httptest.ResponseRecorder {
	return s.Request(http.MethodGet, path, opts...)
}

// HEAD performs a HEAD request
func (s *TestServer) HEAD(path string, opts ...RequestOption) *httptest.ResponseRecorder {
	return s.Request(http.MethodHead, path, opts...)
}

// RequestOption modifies an HTTP request
type RequestOption func(*http.Request)

// WithHeader adds a header to the request
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

// WithAccept sets the Accept header, which decides whether errors come back
// as HTML pages or JSON.
func WithAccept(value string) RequestOption {
	return WithHeader("Accept", value)
}
