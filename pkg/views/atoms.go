package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/agrimind/landing/pkg/motion"
)

func Badge(label string) g.Node {
	return Span(
		Class("inline-flex items-center gap-1 rounded-full border border-emerald-300/60 bg-emerald-50/60 px-3 py-1 text-xs font-medium text-emerald-700"),
		Icon("lucide--sparkles h-3.5 w-3.5", ""),
		g.Text(" "+label),
	)
}

func Stat(label, value string) g.Node {
	return Div(
		Class("rounded-xl bg-white/70 backdrop-blur border border-white/60 p-4 shadow-sm"),
		Div(Class("text-2xl font-semibold text-gray-900"), g.Text(value)),
		Div(Class("text-xs text-gray-600 mt-1"), g.Text(label)),
	)
}

func FeatureCard(t *motion.Tracker, icon, title, body string) g.Node {
	return Reveal(t, motion.Card,
		"group rounded-2xl border border-gray-200 bg-white p-6 shadow-sm hover:shadow-md transition-shadow",
		Div(
			Class("h-10 w-10 rounded-lg bg-emerald-100 text-emerald-700 flex items-center justify-center mb-4 group-hover:scale-105 transition-transform"),
			Icon(icon+" h-5 w-5", ""),
		),
		H3(Class("text-lg font-semibold text-gray-900 mb-2"), g.Text(title)),
		P(Class("text-gray-600 leading-relaxed"), g.Text(body)),
	)
}
