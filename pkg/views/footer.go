package views

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(brand string, now time.Time) g.Node {
	return Footer(
		Class("border-t border-gray-200 py-10"),
		Div(
			Class("mx-auto max-w-7xl px-4 sm:px-6 lg:px-8 flex flex-col sm:flex-row items-center justify-between gap-4"),
			Div(
				Class("text-sm text-gray-600"),
				g.Text(fmt.Sprintf("© %d %s", now.Year(), brand)),
			),
			Div(
				Class("flex items-center gap-6 text-sm text-gray-700"),
				A(Href("#"), Class("hover:text-gray-900"), g.Text("Privacy")),
				A(Href("#"), Class("hover:text-gray-900"), g.Text("Security")),
				A(Href("#"), Class("hover:text-gray-900"), g.Text("Contact")),
			),
		),
	)
}
