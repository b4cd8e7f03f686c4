package shell

import (
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/bornholm/comptoir/internal/nav"
	"github.com/bornholm/comptoir/internal/ui"
)

// Sidebar renders the navigation. It has no failure mode and renders the same
// output for the same active path.
func (s *Shell) Sidebar(activePath string) g.Node {
	return html.Div(
		html.Class("sidebar"),
		html.A(
			html.Class("sidebar-brand"),
			html.Href(s.opts.BrandURL),
			ui.Icon(nav.IconStore, 22),
			html.Span(g.Text(s.opts.BrandLabel)),
		),
		html.Nav(
			html.Class("sidebar-nav"),
			g.Attr("aria-label", "Admin navigation"),
			g.Map(s.opts.Links, func(link nav.LinkDescriptor) g.Node {
				return s.sidebarItem(link, activePath)
			}),
		),
		html.Div(
			html.Class("sidebar-footer"),
			html.A(
				html.Class("sidebar-link sidebar-exit"),
				html.Href(s.opts.StorefrontURL),
				g.Attr("data-exit", ""),
				ui.Icon(nav.IconExit, ui.DefaultIconSize),
				html.Span(html.Class("sidebar-label"), g.Text(s.opts.StorefrontLabel)),
			),
		),
	)
}

func (s *Shell) sidebarItem(link nav.LinkDescriptor, activePath string) g.Node {
	active := isActivePath(link.Path, activePath, s.opts.BrandURL)

	return html.A(
		html.Class("sidebar-link"),
		html.Href(link.Path),
		g.Attr("hx-get", link.Path),
		g.Attr("hx-target", "#content"),
		g.Attr("hx-push-url", "true"),
		g.If(active, g.Attr("aria-current", "page")),
		ui.Icon(link.Icon, ui.DefaultIconSize),
		html.Span(html.Class("sidebar-label"), g.Text(link.Label)),
		g.If(link.HasBadge(), ui.Badge(ui.BadgeSecondary, link.Badge)),
	)
}

// isActivePath determines if a nav item should be marked as active.
func isActivePath(itemPath, activePath, basePath string) bool {
	if activePath == "" || itemPath == "" {
		return false
	}

	activePath = strings.TrimSuffix(activePath, "/")
	if activePath == "" {
		activePath = "/"
	}

	if itemPath == activePath {
		return true
	}

	// The admin root only matches itself
	if itemPath == basePath {
		return false
	}

	return strings.HasPrefix(activePath, itemPath+"/")
}
