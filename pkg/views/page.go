package views

import (
	"time"

	g "maragu.dev/gomponents"

	"github.com/agrimind/landing/pkg/assets"
	"github.com/agrimind/landing/pkg/disclosure"
	"github.com/agrimind/landing/pkg/models"
	"github.com/agrimind/landing/pkg/motion"
)

// PageData is everything one render of the landing page depends on.
type PageData struct {
	Content      models.PageContent
	Waitlist     models.WaitlistState
	SignupFailed bool
	FAQ          *disclosure.Set
	SceneURL     string
	Now          time.Time

	// Bundle makes the page self-contained, e.g. for a static export.
	Bundle *assets.Bundle
}

// LandingPage composes the sections in their fixed order.
func LandingPage(data PageData) g.Node {
	if data.Now.IsZero() {
		data.Now = time.Now()
	}
	reveals := motion.NewTracker("reveal")
	c := data.Content

	return Layout(
		PageConfig{SceneURL: data.SceneURL, Bundle: data.Bundle},
		Navbar(c.Brand),
		Hero(reveals, c, data.Waitlist, data.SceneURL),
		Benefits(reveals, c.Benefits),
		Product(reveals, c.Checklist),
		UseCases(c.UseCases),
		CTA(data.Waitlist, data.SignupFailed),
		FAQ(c.FAQ, data.FAQ),
		PageFooter(c.Brand, data.Now),
	)
}
