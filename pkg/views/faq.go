package views

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/agrimind/landing/pkg/disclosure"
	"github.com/agrimind/landing/pkg/models"
)

// FAQ renders one native disclosure per entry. open decides which entries
// start expanded; the browser owns toggling from there.
func FAQ(entries []models.FAQEntry, open *disclosure.Set) g.Node {
	if open == nil {
		open = disclosure.New(len(entries))
	}

	items := make([]g.Node, 0, len(entries))
	for i, f := range entries {
		items = append(items, Details(
			ID(fmt.Sprintf("faq-%d", i+1)),
			Class("group p-6 open:bg-gray-50"),
			g.If(open.Expanded(i), g.Attr("open")),
			Summary(
				Class("flex cursor-pointer items-center justify-between text-left font-medium text-gray-900"),
				g.Text(f.Question),
				Span(Class("ml-4 text-emerald-600"), g.Text("+")),
			),
			P(Class("mt-2 text-gray-700"), g.Text(f.Answer)),
		))
	}

	return Section(
		ID("faq"),
		Class("relative py-20"),
		Div(
			Class("mx-auto max-w-4xl px-4 sm:px-6 lg:px-8"),
			H3(Class("text-2xl sm:text-3xl font-semibold"), g.Text("Common questions")),
			Div(
				Class("mt-8 divide-y divide-gray-200 rounded-2xl border border-gray-200 bg-white"),
				g.Group(items),
			),
		),
	)
}
