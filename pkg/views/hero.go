package views

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/agrimind/landing/pkg/models"
	"github.com/agrimind/landing/pkg/motion"
)

// DecorativeViewport fills its parent with the hero scene. A missing or
// failing scene leaves an empty region; the overlay above keeps the text
// readable either way.
func DecorativeViewport(sceneURL string) g.Node {
	return Div(
		Class("absolute inset-0"),
		g.Attr("aria-hidden", "true"),
		g.If(sceneURL != "",
			g.El("spline-viewer",
				g.Attr("url", sceneURL),
				g.Attr("loading-anim-type", "none"),
				g.Attr("style", "width:100%;height:100%;display:block"),
			),
		),
	)
}

func Hero(t *motion.Tracker, c models.PageContent, state models.WaitlistState, sceneURL string) g.Node {
	return Section(
		ID("home"),
		Class("relative h-[90vh] min-h-[640px] w-full overflow-hidden"),

		DecorativeViewport(sceneURL),
		Div(Class("pointer-events-none absolute inset-0 bg-gradient-to-b from-white/70 via-white/30 to-white")),

		Div(
			Class("relative z-10 mx-auto max-w-7xl px-4 sm:px-6 lg:px-8 h-full flex items-center"),
			Div(
				Class("max-w-2xl"),
				Div(
					Class("flex items-center gap-3 mb-4"),
					Badge("YC 2025-ready • Pilot slots open"),
				),

				Reveal(t, motion.Mount(600*time.Millisecond, 0), "",
					H1(
						Class("text-4xl sm:text-5xl lg:text-6xl font-semibold tracking-tight text-gray-900"),
						g.Text("Agriculture, upgraded by AI"),
					),
				),

				Reveal(t, motion.Mount(700*time.Millisecond, 50*time.Millisecond), "",
					P(
						Class("mt-4 text-lg text-gray-700 leading-relaxed"),
						g.Text("AgriMind is your autonomous agronomist: a decision engine that turns satellite, drone, and ground data into timely, precise actions. Grow more with less—no dashboards required."),
					),
				),

				Reveal(t, motion.Mount(700*time.Millisecond, 100*time.Millisecond), "mt-8",
					waitlistForm(heroWaitlist, state),
					P(Class("mt-3 text-sm text-gray-600"), g.Text("Free pilot for the first 5 growers • US & LATAM • Start in under 7 days")),
				),

				Div(
					Class("mt-8 grid grid-cols-3 gap-3 max-w-md"),
					g.Group(g.Map(c.Stats, func(s models.Stat) g.Node {
						return Stat(s.Label, s.Value)
					})),
				),
			),
		),
	)
}
