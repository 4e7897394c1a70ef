// Package export renders the whole site into plain files so it can be
// served from any static host.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/aks-labs/website/assets"
	"github.com/aks-labs/website/domain/docs"
	"github.com/aks-labs/website/domain/pages"
	"github.com/aks-labs/website/internal/site"
	"github.com/aks-labs/website/pkg/logger"
	"github.com/aks-labs/website/pkg/tracing"
)

// Result summarizes one export run.
type Result struct {
	Pages  int
	Assets int
}

// Exporter writes every route of the site into an output directory, each
// page as <route>/index.html so any static file server can serve it.
type Exporter struct {
	log  *slog.Logger
	site *site.Site
	docs *docs.Service
}

func New(log *slog.Logger, s *site.Site, svc *docs.Service) *Exporter {
	return &Exporter{
		log:  log.With(logger.Scope("export")),
		site: s,
		docs: svc,
	}
}

// Run renders all pages plus the crawler files and copies the static
// assets. Existing files are overwritten in place.
func (e *Exporter) Run(ctx context.Context, outDir string) (Result, error) {
	_, span := tracing.Start(ctx, "site.export")
	defer span.End()

	var res Result

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, fmt.Errorf("creating %s: %w", outDir, err)
	}

	if err := e.writePage(outDir, "/", pages.HomePage(e.site)); err != nil {
		return res, err
	}
	res.Pages++

	if err := e.writePage(outDir, "/docs", pages.DocsIndexPage(e.site, e.docs)); err != nil {
		return res, err
	}
	res.Pages++

	for _, m := range e.docs.List() {
		doc, err := e.docs.Get(m.Slug)
		if err != nil {
			return res, err
		}
		if err := e.writePage(outDir, doc.Route(), pages.DocumentPage(e.site, e.docs, doc)); err != nil {
			return res, err
		}
		res.Pages++
	}

	// Static hosts serve this on unknown paths
	if err := e.writeNode(filepath.Join(outDir, "404.html"), pages.NotFoundPage(e.site)); err != nil {
		return res, err
	}
	res.Pages++

	sitemap, err := pages.SitemapXML(e.site, e.docs)
	if err != nil {
		return res, fmt.Errorf("building sitemap: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "sitemap.xml"), sitemap, 0o644); err != nil {
		return res, err
	}
	if err := os.WriteFile(filepath.Join(outDir, "robots.txt"), []byte(pages.RobotsTxt(e.site)), 0o644); err != nil {
		return res, err
	}

	res.Assets, err = e.copyAssets(outDir)
	if err != nil {
		return res, err
	}

	e.log.Info("site exported",
		slog.String("dir", outDir),
		slog.Int("pages", res.Pages),
		slog.Int("assets", res.Assets))

	return res, nil
}

// writePage maps a route to <route>/index.html under the output directory.
func (e *Exporter) writePage(outDir, route string, page g.Node) error {
	rel := strings.TrimPrefix(route, "/")
	dir := filepath.Join(outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return e.writeNode(filepath.Join(dir, "index.html"), page)
}

func (e *Exporter) writeNode(path string, page g.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}

// copyAssets mirrors the embedded static tree into <out>/static.
func (e *Exporter) copyAssets(outDir string) (int, error) {
	count := 0
	staticDir := filepath.Join(outDir, "static")

	err := fs.WalkDir(assets.Static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(staticDir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		data, err := fs.ReadFile(assets.Static, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("copying static assets: %w", err)
	}

	return count, nil
}
