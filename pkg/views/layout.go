package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/agrimind/landing/pkg/assets"
)

// SplineViewerScript renders the decorative hero scene.
const SplineViewerScript = "https://unpkg.com/@splinetool/viewer@1.9.82/build/spline-viewer.js"

type PageConfig struct {
	Title       string
	Description string
	SceneURL    string

	// Bundle, when set, is inlined instead of linking /static/.
	Bundle *assets.Bundle
}

// Without scripting, revealed blocks must still be readable.
const noScriptCSS = `[data-reveal]{opacity:1!important;transform:none!important}`

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "AgriMind - Agriculture, upgraded by AI"
	}

	if config.Description == "" {
		config.Description = "AgriMind is your autonomous agronomist: a decision engine that turns satellite, drone, and ground data into timely, precise actions."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Script(Src("https://cdn.tailwindcss.com")),
				stylesheet(config.Bundle),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				g.If(config.SceneURL != "",
					Script(Type("module"), Src(SplineViewerScript)),
				),
				g.El("noscript", g.El("style", g.Raw(noScriptCSS))),
			),
			Body(
				Class("min-h-screen w-full bg-gradient-to-b from-emerald-50 via-white to-white text-gray-900"),
				g.Group(content),

				script(config.Bundle, assets.RevealPath),
				script(config.Bundle, assets.WaitlistPath),
			),
		),
	})
}

func stylesheet(b *assets.Bundle) g.Node {
	if b != nil {
		return g.El("style", g.Raw(b.CSS))
	}
	return Link(Rel("stylesheet"), Href("/static/"+assets.StylesPath))
}

func script(b *assets.Bundle, path string) g.Node {
	if b == nil {
		return Script(Src("/static/"+path), g.Attr("defer"))
	}
	switch path {
	case assets.RevealPath:
		return Script(g.Raw(b.RevealJS))
	case assets.WaitlistPath:
		return Script(g.Raw(b.WaitlistJS))
	}
	return nil
}
