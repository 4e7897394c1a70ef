// Package components holds the HTML building blocks of the site. Every
// function here is a pure view: data in, markup out, no I/O.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/aks-labs/website/internal/site"
)

// PageConfig carries the per-page head metadata.
type PageConfig struct {
	Title       string
	Description string
	// Path is the site-relative route of the page, used for the canonical
	// link. Empty skips the tag.
	Path string
}

// Layout wraps page content in the document shell: head metadata, navbar
// and footer come from the site configuration.
func Layout(s *site.Site, cfg PageConfig, content ...g.Node) g.Node {
	title := s.Title
	if cfg.Title != "" {
		title = cfg.Title + " | " + s.Title
	}

	description := cfg.Description
	if description == "" {
		description = s.Tagline
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title)),
				Meta(Name("description"), Content(description)),

				Meta(g.Attr("property", "og:title"), Content(title)),
				Meta(g.Attr("property", "og:description"), Content(description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				g.If(cfg.Path != "",
					Link(Rel("canonical"), Href(s.AbsoluteURL(cfg.Path))),
				),

				Link(Rel("icon"), Href("/static/img/logo.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/static/css/custom.css")),
			),
			Body(
				Navbar(s),
				Main(g.Group(content)),
				PageFooter(s),
			),
		),
	})
}
