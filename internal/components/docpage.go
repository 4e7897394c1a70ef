package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/aks-labs/website/domain/docs"
)

// DocPage is the documentation reading view: the category sidebar on the
// left, the rendered document on the right.
func DocPage(doc *docs.Document, groups []docs.CategoryGroup, prev, next *docs.DocumentMeta) g.Node {
	return Div(
		Class("container"),
		Div(
			Class("row"),
			Aside(
				Class("col col--3"),
				Sidebar(groups, doc.Slug),
			),
			Article(
				Class("col col--9"),
				H1(g.Text(doc.Title)),
				docMeta(doc),
				Div(Class("markdown"), g.Raw(string(doc.HTML))),
				docTags(doc.Tags),
				pagination(prev, next),
			),
		),
	)
}

// Sidebar lists every category with its documents; the entry matching
// activeSlug is highlighted.
func Sidebar(groups []docs.CategoryGroup, activeSlug string) g.Node {
	return Nav(
		Class("sidebar"),
		g.Group(g.Map(groups, func(group docs.CategoryGroup) g.Node {
			return Div(
				Class("sidebar__category"),
				Div(Class("sidebar__title"), g.Text(group.Category.Name)),
				Ul(
					Class("sidebar__items"),
					g.Group(g.Map(group.Documents, func(m docs.DocumentMeta) g.Node {
						class := "sidebar__link"
						if m.Slug == activeSlug {
							class += " sidebar__link--active"
						}
						return Li(A(Class(class), Href(m.Route()), g.Text(m.Title)))
					})),
				),
			)
		})),
	)
}

// DocsIndex is the documentation landing page: every category with its
// documents and their teasers.
func DocsIndex(groups []docs.CategoryGroup) g.Node {
	return Div(
		Class("container"),
		H1(g.Text("Documentation")),
		g.Group(g.Map(groups, func(group docs.CategoryGroup) g.Node {
			return Section(
				Class("docs-category"),
				H2(g.Text(group.Category.Name)),
				g.If(group.Category.Description != "",
					P(g.Text(group.Category.Description)),
				),
				Ul(
					Class("docs-category__items"),
					g.Group(g.Map(group.Documents, func(m docs.DocumentMeta) g.Node {
						return Li(
							A(Href(m.Route()), g.Text(m.Title)),
							g.If(m.Description != "",
								P(Class("docs-category__teaser"), g.Text(m.Description)),
							),
						)
					})),
				),
			)
		})),
	)
}

func docMeta(doc *docs.Document) g.Node {
	return Div(
		Class("doc-meta"),
		Span(Class("doc-meta__category"), g.Text(doc.Category)),
		g.If(doc.LastUpdated != "",
			Span(Class("doc-meta__updated"), g.Text("Last updated "+doc.LastUpdated)),
		),
		Span(Class("doc-meta__readtime"), g.Text(fmt.Sprintf("%d min read", doc.ReadTime))),
	)
}

func docTags(tags []string) g.Node {
	if len(tags) == 0 {
		return nil
	}
	return Div(
		Class("doc-tags"),
		g.Group(g.Map(tags, func(tag string) g.Node {
			return Span(Class("badge"), g.Text(tag))
		})),
	)
}

func pagination(prev, next *docs.DocumentMeta) g.Node {
	if prev == nil && next == nil {
		return nil
	}
	return Nav(
		Class("pagination"),
		paginationLink(prev, "pagination__link--prev", "Previous"),
		paginationLink(next, "pagination__link--next", "Next"),
	)
}

func paginationLink(m *docs.DocumentMeta, class, label string) g.Node {
	if m == nil {
		return nil
	}
	return A(
		Class("pagination__link "+class),
		Href(m.Route()),
		Span(Class("pagination__label"), g.Text(label)),
		Span(Class("pagination__title"), g.Text(m.Title)),
	)
}
