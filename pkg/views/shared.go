package views

import (
	"fmt"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/agrimind/landing/pkg/motion"
)

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon. iconClass is "set--name" optionally
// followed by size classes, e.g. "lucide--arrow-right h-4 w-4".
func Icon(iconClass, ariaLabel string) g.Node {
	classes := "iconify inline-block"
	if size := extractSizeClasses(iconClass); size != "" {
		classes = fmt.Sprintf("iconify inline-block %s", size)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", convertIconName(iconClass)),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", convertIconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

func Brand(name string) g.Node {
	return A(
		Href("#"),
		Class("font-semibold text-lg"),
		Span(
			Class("bg-gradient-to-r from-emerald-600 to-lime-500 bg-clip-text text-transparent"),
			g.Text(name),
		),
	)
}

// Reveal wraps children in an element that enters once, as described by
// spec. The element is registered with t so every reveal on a page gets a
// distinct id; reveal.js reads the data attributes. A spec the tracker
// rejects renders its children without an entrance.
func Reveal(t *motion.Tracker, spec motion.Spec, class string, children ...g.Node) g.Node {
	id, err := t.Register(spec)
	if err != nil {
		return Div(g.If(class != "", Class(class)), g.Group(children))
	}

	return Div(
		ID(id),
		g.If(class != "", Class(class)),
		g.Attr("data-reveal", ""),
		g.Attr("data-reveal-threshold", strconv.FormatFloat(spec.Threshold, 'g', -1, 64)),
		g.If(spec.OnMount, g.Attr("data-reveal-mount", "")),
		g.Attr("style", spec.InitialStyle()),
		g.Group(children),
	)
}
