package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/agrimind/landing/pkg/models"
)

// WaitlistAction is where both waitlist forms post.
const WaitlistAction = "/waitlist"

type waitlistVariant struct {
	FormID      string
	InputID     string
	ButtonLabel string
	SRLabel     bool
	FormClass   string
	InputClass  string
	ButtonClass string
}

var heroWaitlist = waitlistVariant{
	FormID:      "hero-waitlist",
	InputID:     "email",
	ButtonLabel: "Request early access",
	SRLabel:     true,
	FormClass:   "w-full sm:flex sm:items-center sm:gap-3",
	InputClass:  "w-full sm:w-80 rounded-lg border border-gray-300 bg-white/90 px-4 py-3 text-gray-900 placeholder:text-gray-400 focus:outline-none focus:ring-2 focus:ring-emerald-500",
	ButtonClass: "mt-3 sm:mt-0 inline-flex items-center justify-center gap-2 rounded-lg bg-emerald-600 px-5 py-3 font-medium text-white shadow-sm hover:bg-emerald-700 focus:outline-none focus:ring-2 focus:ring-emerald-500",
}

var ctaWaitlist = waitlistVariant{
	FormID:      "cta-waitlist",
	InputID:     "cta-email",
	ButtonLabel: "Join the waitlist",
	FormClass:   "mt-8 flex flex-col sm:flex-row items-center justify-center gap-3",
	InputClass:  "w-full sm:w-96 rounded-lg border border-gray-300 bg-white px-4 py-3 text-gray-900 placeholder:text-gray-400 focus:outline-none focus:ring-2 focus:ring-emerald-500",
	ButtonClass: "inline-flex items-center gap-2 rounded-lg bg-emerald-600 px-5 py-3 font-medium text-white shadow-sm hover:bg-emerald-700",
}

// waitlistForm renders one instance of the waitlist form. Every instance
// shows the same shared draft; waitlist.js keeps them in step while typing.
func waitlistForm(v waitlistVariant, state models.WaitlistState) g.Node {
	return Form(
		ID(v.FormID),
		Class(v.FormClass),
		g.Attr("method", "post"),
		g.Attr("action", WaitlistAction),
		g.Attr("data-waitlist-form", ""),

		g.If(v.SRLabel,
			Label(g.Attr("for", v.InputID), Class("sr-only"), g.Text("Work email")),
		),
		Input(
			ID(v.InputID),
			Type("email"),
			Name("email"),
			Required(),
			Value(state.Draft),
			Placeholder("Work email"),
			g.Attr("autocomplete", "email"),
			g.If(!v.SRLabel, g.Attr("aria-label", "Work email")),
			g.Attr("data-waitlist-input", ""),
			Class(v.InputClass),
		),
		Button(
			Type("submit"),
			Class(v.ButtonClass),
			g.Text(v.ButtonLabel+" "),
			Icon("lucide--arrow-right h-4 w-4", ""),
		),
	)
}
