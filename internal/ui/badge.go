package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

type BadgeVariant string

const (
	BadgeDefault     BadgeVariant = "default"
	BadgeSecondary   BadgeVariant = "secondary"
	BadgeDestructive BadgeVariant = "destructive"
	BadgeOutline     BadgeVariant = "outline"
)

// Badge renders a short indicator, such as a count or a status word.
func Badge(variant BadgeVariant, text string) g.Node {
	if variant == "" {
		variant = BadgeDefault
	}

	return html.Span(
		html.Class(badgeClass(variant)),
		g.Attr("data-badge", string(variant)),
		g.Text(text),
	)
}

func badgeClass(variant BadgeVariant) string {
	if variant == "" {
		variant = BadgeDefault
	}

	return "badge badge-" + string(variant)
}
