package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/agrimind/landing/pkg/models"
	"github.com/agrimind/landing/pkg/motion"
)

func Benefits(t *motion.Tracker, benefits []models.Benefit) g.Node {
	return Section(
		ID("benefits"),
		Class("relative py-20"),
		Div(
			Class("mx-auto max-w-7xl px-4 sm:px-6 lg:px-8"),
			Div(
				Class("max-w-2xl"),
				H2(Class("text-3xl font-semibold tracking-tight"), g.Text("Built for operators, not spreadsheets")),
				P(Class("mt-3 text-gray-600"), g.Text("Hands-free agronomy that tells you what to do next, not just what happened.")),
			),
			Div(
				Class("mt-10 grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Group(g.Map(benefits, func(b models.Benefit) g.Node {
					return FeatureCard(t, b.Icon, b.Title, b.Text)
				})),
			),
		),
	)
}

func Product(t *motion.Tracker, checklist []string) g.Node {
	return Section(
		ID("product"),
		Class("relative py-20 bg-gradient-to-b from-white to-emerald-50/50"),
		Div(
			Class("mx-auto max-w-7xl px-4 sm:px-6 lg:px-8"),
			Div(
				Class("grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),

				Reveal(t, motion.Block, "",
					Badge("How it works"),
					H3(Class("mt-3 text-2xl sm:text-3xl font-semibold"), g.Text("From raw pixels to precise actions")),
					Ul(
						Class("mt-6 space-y-4"),
						g.Group(g.Map(checklist, func(item string) g.Node {
							return Li(
								Class("flex items-start gap-3 text-gray-700"),
								Icon("lucide--check-circle-2 mt-0.5 h-5 w-5 text-emerald-600", ""),
								g.Text(" "+item),
							)
						})),
					),
					Div(
						Class("mt-8 flex items-center gap-3"),
						A(
							Href("#apply"),
							Class("inline-flex items-center gap-2 rounded-lg bg-gray-900 px-5 py-3 text-white font-medium hover:bg-gray-800"),
							g.Text("Book a 20‑min intro "),
							Icon("lucide--arrow-right h-4 w-4", ""),
						),
						A(Href("#faq"), Class("text-gray-800 hover:text-gray-900 underline underline-offset-4"), g.Text("Security & data ownership")),
					),
				),

				Reveal(t, motion.Zoom, "relative",
					Div(
						Class("aspect-[4/3] rounded-2xl border border-gray-200 bg-white shadow-sm overflow-hidden"),
						Div(Class("h-full w-full bg-[radial-gradient(80%_60%_at_50%_0%,#bbf7d0_0%,transparent_60%),conic-gradient(from_180deg_at_50%_50%,#ecfccb_0%,transparent_60%)] opacity-70")),
					),
					Div(
						Class("-mt-10 ml-6 w-3/4 rounded-2xl border border-gray-200 bg-white p-5 shadow-sm"),
						Div(
							Class("flex items-center gap-2 text-sm font-medium text-gray-900"),
							Icon("lucide--leaf h-4 w-4 text-emerald-600", ""),
							g.Text(" Variable rate map"),
						),
						P(Class("mt-2 text-sm text-gray-600"), g.Text("Autogenerated prescription rates exported to John Deere and CNH.")),
					),
				),
			),
		),
	)
}

func UseCases(useCases []models.UseCase) g.Node {
	return Section(
		ID("use-cases"),
		Class("relative py-20"),
		Div(
			Class("mx-auto max-w-7xl px-4 sm:px-6 lg:px-8"),
			H3(Class("text-2xl sm:text-3xl font-semibold"), g.Text("Where AgriMind shines first")),
			Div(
				Class("mt-8 grid grid-cols-1 md:grid-cols-3 gap-6"),
				g.Group(g.Map(useCases, func(u models.UseCase) g.Node {
					return Div(
						Class("rounded-2xl border border-gray-200 bg-white p-6 shadow-sm"),
						H4(Class("text-lg font-semibold text-gray-900"), g.Text(u.Title)),
						P(Class("mt-2 text-gray-600"), g.Text(u.Text)),
					)
				})),
			),
		),
	)
}
