package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/agrimind/landing/pkg/content"
	"github.com/agrimind/landing/pkg/models"
)

// CTA is the #apply section. The confirmation is always rendered so the
// enhancement script can reveal it; it is hidden until the shared state is
// submitted.
func CTA(state models.WaitlistState, signupFailed bool) g.Node {
	return Section(
		ID("apply"),
		Class("relative py-20 bg-gray-50"),
		Div(
			Class("mx-auto max-w-3xl px-4 sm:px-6 lg:px-8 text-center"),
			Badge("Pilot with us before Demo Day"),
			H3(Class("mt-3 text-3xl font-semibold"), g.Text("Be one of the first 5 growers")),
			P(Class("mt-3 text-gray-600"), g.Text("Were onboarding farms in the US and LATAM. No long contracts. Bring one field; well earn the rest.")),

			waitlistForm(ctaWaitlist, state),

			P(
				ID("waitlist-confirmation"),
				Class("mt-4 text-emerald-700 waitlist-confirmation"),
				g.Attr("role", "status"),
				g.Attr("aria-live", "polite"),
				g.If(!state.Submitted, g.Attr("hidden")),
				g.Text(content.ConfirmationText),
			),
			P(
				ID("waitlist-error"),
				Class("mt-4 text-red-600"),
				g.Attr("role", "alert"),
				g.If(!signupFailed, g.Attr("hidden")),
				g.Text(content.SignupErrorText),
			),
		),
	)
}
