package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navLink struct {
	Label string
	Href  string
}

var navLinks = []navLink{
	{"Product", "#product"},
	{"Benefits", "#benefits"},
	{"Use cases", "#use-cases"},
	{"FAQ", "#faq"},
}

func Navbar(brand string) g.Node {
	return Header(
		Class("fixed top-0 inset-x-0 z-40 border-b border-white/50 bg-white/60 backdrop-blur"),
		Div(
			Class("mx-auto max-w-7xl px-4 sm:px-6 lg:px-8 h-16 flex items-center justify-between"),
			Brand(brand),
			Nav(
				Class("hidden md:flex items-center gap-8 text-sm"),
				g.Group(g.Map(navLinks, func(l navLink) g.Node {
					return A(Href(l.Href), Class("text-gray-700 hover:text-gray-900"), g.Text(l.Label))
				})),
				A(
					Href("#apply"),
					Class("inline-flex items-center gap-2 rounded-md bg-gray-900 text-white px-3 py-2 font-medium hover:bg-gray-800"),
					g.Text("Join the waitlist "),
					Icon("lucide--arrow-right h-4 w-4", ""),
				),
			),
		),
	)
}
