package pages

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h *Handler, log *slog.Logger) {
	e.GET("/", h.Home)
	e.GET("/docs", h.DocsIndex)
	e.GET("/docs/:category/:slug", h.DocPage)
	e.GET("/sitemap.xml", h.Sitemap)
	e.GET("/robots.txt", h.Robots)

	log.Info("registered page routes")
}
