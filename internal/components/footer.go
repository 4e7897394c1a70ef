package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/aks-labs/website/internal/site"
)

// PageFooter renders the footer link groups and copyright line from the
// site configuration.
func PageFooter(s *site.Site) g.Node {
	return Footer(
		Class("footer"),
		Div(
			Class("container"),
			Div(
				Class("row"),
				g.Group(g.Map(s.Footer.Groups, func(group site.LinkGroup) g.Node {
					return Div(
						Class("col"),
						Div(Class("footer__title"), g.Text(group.Title)),
						Ul(
							Class("footer__items"),
							g.Group(g.Map(group.Items, func(item site.NavItem) g.Node {
								link := []g.Node{
									Href(item.URL()),
									g.Text(item.Label),
								}
								if item.External() {
									link = append(link,
										g.Attr("target", "_blank"),
										g.Attr("rel", "noopener noreferrer"),
									)
								}
								return Li(A(link...))
							})),
						),
					)
				})),
			),
			Div(Class("footer__copyright"), g.Text(s.Footer.Copyright)),
		),
	)
}
