package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ErrorPage is the browser-facing error view. The message is already
// user-presentable; internals never reach this component.
func ErrorPage(status int, message string) g.Node {
	return Div(
		Class("container error-page"),
		H1(Class("error-page__status"), g.Text(strconv.Itoa(status))),
		P(Class("error-page__message"), g.Text(message)),
		A(
			Class("button button--primary"),
			Href("/"),
			g.Text("Back to Home"),
		),
	)
}
