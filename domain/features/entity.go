// Package features declares the feature cards shown on the homepage. The
// registry is authored data, fixed at compile time, rendered in declaration
// order.
package features

// FeatureItem is one homepage card: a titled teaser linking to a tutorial.
type FeatureItem struct {
	// Title is the card heading, shown as written.
	Title string

	// Icon names an embedded SVG from the assets icon set.
	Icon string

	// Description is a trusted HTML fragment. It is rendered verbatim, so
	// inline markup like <code> or <em> survives into the page.
	Description string

	// LinkTo is the site-internal document route the card's Read link
	// points at.
	LinkTo string
}
