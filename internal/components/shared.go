package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/aks-labs/website/assets"
	"github.com/aks-labs/website/internal/site"
)

// SiteIcon resolves a named icon from the embedded set to inline SVG.
// Unknown names render nothing; a missing icon is a content defect, not an
// error.
func SiteIcon(name string) g.Node {
	svg, ok := assets.Icon(name)
	if !ok {
		return nil
	}
	return g.Raw(svg)
}

// Logo renders the brand mark plus site title.
func Logo(s *site.Site) g.Node {
	return A(
		Href("/"),
		Class("navbar__brand"),
		Span(Class("navbar__logo"), SiteIcon("aks")),
		Span(g.Text(s.Title)),
	)
}
