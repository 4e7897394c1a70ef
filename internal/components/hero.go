package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/aks-labs/website/internal/site"
)

// Hero renders the homepage banner: site title, tagline and the entry point
// into the docs.
func Hero(s *site.Site) g.Node {
	return Header(
		Class("hero"),
		Div(
			Class("container"),
			H1(Class("hero__title"), g.Text(s.Title)),
			P(Class("hero__subtitle"), g.Text(s.Tagline)),
			A(
				Class("button button--primary button--lg"),
				Href("/docs/getting-started/intro"),
				g.Text("Get Started"),
			),
		),
	)
}
