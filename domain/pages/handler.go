// Package pages serves the browser-facing HTML: the homepage, the
// documentation views and the crawler endpoints.
package pages

import (
	"net/http"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/aks-labs/website/domain/docs"
	"github.com/aks-labs/website/internal/site"
	"github.com/aks-labs/website/pkg/apperror"
)

type Handler struct {
	site *site.Site
	docs *docs.Service
}

func NewHandler(s *site.Site, svc *docs.Service) *Handler {
	return &Handler{site: s, docs: svc}
}

// Home handles GET /.
func (h *Handler) Home(c echo.Context) error {
	return h.render(c, http.StatusOK, HomePage(h.site))
}

// DocsIndex handles GET /docs.
func (h *Handler) DocsIndex(c echo.Context) error {
	return h.render(c, http.StatusOK, DocsIndexPage(h.site, h.docs))
}

// DocPage handles GET /docs/:category/:slug. The category segment must
// match the document's category so every document has one canonical URL.
func (h *Handler) DocPage(c echo.Context) error {
	doc, err := h.docs.Get(c.Param("slug"))
	if err != nil || doc.Category != c.Param("category") {
		return apperror.NewNotFound("page", c.Request().URL.Path)
	}

	return h.render(c, http.StatusOK, DocumentPage(h.site, h.docs, doc))
}

// Sitemap handles GET /sitemap.xml.
func (h *Handler) Sitemap(c echo.Context) error {
	out, err := SitemapXML(h.site, h.docs)
	if err != nil {
		return apperror.ErrInternal.WithMessage("failed to build sitemap").WithInternal(err)
	}
	return c.Blob(http.StatusOK, "application/xml", out)
}

// Robots handles GET /robots.txt.
func (h *Handler) Robots(c echo.Context) error {
	return c.String(http.StatusOK, RobotsTxt(h.site))
}

func (h *Handler) render(c echo.Context, status int, page g.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return page.Render(c.Response())
}
