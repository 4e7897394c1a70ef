package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/aks-labs/website/internal/site"
)

// Navbar renders the top navigation from the site configuration. External
// items open in a new tab.
func Navbar(s *site.Site) g.Node {
	return Nav(
		Class("navbar"),
		Logo(s),
		Div(
			Class("navbar__items"),
			g.Group(g.Map(s.Navbar.Items, func(item site.NavItem) g.Node {
				attrs := []g.Node{
					Class("navbar__link"),
					Href(item.URL()),
					g.Text(item.Label),
				}
				if item.External() {
					attrs = append(attrs,
						g.Attr("target", "_blank"),
						g.Attr("rel", "noopener noreferrer"),
					)
				}
				return A(attrs...)
			})),
		),
	)
}
