package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/aks-labs/website/domain/features"
)

// FeatureCard renders one homepage card: centered icon, heading, teaser and
// a Read link into the docs. The description is authored HTML and is
// inserted as-is; the title is plain text.
func FeatureCard(item features.FeatureItem) g.Node {
	return Div(
		Class("col col--4 text--center"),
		Div(Class("featureSvg"), SiteIcon(item.Icon)),
		H3(g.Text(item.Title)),
		P(g.Raw(item.Description)),
		A(
			Class("button button--secondary"),
			Href(item.LinkTo),
			g.Text("Read"),
		),
	)
}

// HomepageFeatures renders the feature card row in slice order. An empty
// slice still yields the section shell so the homepage stays well-formed.
func HomepageFeatures(items []features.FeatureItem) g.Node {
	return Section(
		Class("features"),
		Div(
			Class("container"),
			Div(
				Class("row"),
				g.Group(g.Map(items, FeatureCard)),
			),
		),
	)
}
