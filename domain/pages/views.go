package pages

import (
	"encoding/xml"
	"fmt"

	g "maragu.dev/gomponents"

	"github.com/aks-labs/website/domain/docs"
	"github.com/aks-labs/website/domain/features"
	"github.com/aks-labs/website/internal/components"
	"github.com/aks-labs/website/internal/site"
)

// The page builders are pure so the HTTP handlers and the static exporter
// produce byte-identical markup for the same content.

// HomePage is the landing page: hero plus the feature cards.
func HomePage(s *site.Site) g.Node {
	return components.Layout(s, components.PageConfig{Path: "/"},
		components.Hero(s),
		components.HomepageFeatures(features.Items()),
	)
}

// DocsIndexPage lists every category and its documents.
func DocsIndexPage(s *site.Site, svc *docs.Service) g.Node {
	return components.Layout(s,
		components.PageConfig{Title: "Documentation", Path: "/docs"},
		components.DocsIndex(svc.CategoryGroups()),
	)
}

// DocumentPage is the reading view for one document.
func DocumentPage(s *site.Site, svc *docs.Service, doc *docs.Document) g.Node {
	prev, next := svc.PrevNext(doc.Slug)
	return components.Layout(s,
		components.PageConfig{
			Title:       doc.Title,
			Description: doc.Description,
			Path:        doc.Route(),
		},
		components.DocPage(doc, svc.CategoryGroups(), prev, next),
	)
}

// NotFoundPage is the static 404 used by the exporter.
func NotFoundPage(s *site.Site) g.Node {
	return components.Layout(s,
		components.PageConfig{Title: "Page Not Found"},
		components.ErrorPage(404, "page not found"),
	)
}

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapXML builds the sitemap for every site route.
func SitemapXML(s *site.Site, svc *docs.Service) ([]byte, error) {
	set := urlSet{Xmlns: sitemapNS}
	set.URLs = append(set.URLs,
		sitemapURL{Loc: s.AbsoluteURL("/")},
		sitemapURL{Loc: s.AbsoluteURL("/docs")},
	)
	for _, m := range svc.List() {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     s.AbsoluteURL(m.Route()),
			LastMod: m.LastUpdated,
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

// RobotsTxt points crawlers at the sitemap.
func RobotsTxt(s *site.Site) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", s.AbsoluteURL("/sitemap.xml"))
}
