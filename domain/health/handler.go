package health

import (
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aks-labs/website/domain/docs"
	"github.com/aks-labs/website/internal/config"
	"github.com/aks-labs/website/internal/version"
)

// Handler serves the liveness and readiness probes. Readiness hangs off the
// content store: a server that never managed to load its documents should
// not receive traffic.
type Handler struct {
	docs    *docs.Service
	cfg     *config.Config
	startAt time.Time
}

func NewHandler(svc *docs.Service, cfg *config.Config) *Handler {
	return &Handler{
		docs:    svc,
		cfg:     cfg,
		startAt: time.Now(),
	}
}

// HealthResponse is the detailed health report.
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check is one subsystem's result inside the health report.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health handles GET /health.
func (h *Handler) Health(c echo.Context) error {
	contentStatus := "healthy"
	contentMessage := ""
	if h.docs.LoadedAt().IsZero() {
		contentStatus = "unhealthy"
		contentMessage = "content store has never loaded"
	} else if h.docs.Count() == 0 {
		contentStatus = "unhealthy"
		contentMessage = "content store is empty"
	}

	overall := "healthy"
	if contentStatus == "unhealthy" {
		overall = "unhealthy"
	}

	response := HealthResponse{
		Status:    overall,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).String(),
		Version:   version.Version,
		Checks: map[string]Check{
			"content": {
				Status:  contentStatus,
				Message: contentMessage,
			},
		},
	}

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, response)
}

// Healthz handles GET /healthz, the liveness probe.
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready handles GET /ready, the readiness probe.
func (h *Handler) Ready(c echo.Context) error {
	if h.docs.LoadedAt().IsZero() || h.docs.Count() == 0 {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status":  "not_ready",
			"message": "content store not loaded",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status": "ready",
	})
}

// Debug handles GET /debug, development only.
func (h *Handler) Debug(c echo.Context) error {
	if h.cfg.IsProduction() {
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(http.StatusOK, map[string]any{
		"environment": h.cfg.Environment,
		"debug":       h.cfg.Debug,
		"go_version":  runtime.Version(),
		"goroutines":  runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb":       mem.Alloc / 1024 / 1024,
			"total_alloc_mb": mem.TotalAlloc / 1024 / 1024,
			"sys_mb":         mem.Sys / 1024 / 1024,
			"num_gc":         mem.NumGC,
		},
		"content": map[string]any{
			"dir":        h.cfg.Content.Dir,
			"documents":  h.docs.Count(),
			"categories": len(h.docs.Categories()),
			"loaded_at":  h.docs.LoadedAt().UTC().Format(time.RFC3339),
			"watch":      h.cfg.Content.Watch,
		},
	})
}
