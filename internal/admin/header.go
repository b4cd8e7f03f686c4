package admin

import (
	"context"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/bornholm/comptoir/internal/nav"
	"github.com/bornholm/comptoir/internal/shell"
	"github.com/bornholm/comptoir/internal/ui"
)

// NewHeader returns the header of the admin pages: the page title, a product
// search and the current user.
func NewHeader(prefix string) shell.HeaderFunc {
	return func(ctx context.Context) (g.Node, error) {
		username := getUserDisplayName(ctx)

		var title string
		if page, ok := shell.ContextPage(ctx); ok {
			title = page.Title
		}

		return html.Header(
			html.Class("admin-header"),
			html.Style("min-height: 4rem; display: flex; align-items: center; gap: 1rem; padding: 0 1.5rem; border-bottom: 1px solid #e5e7eb"),
			g.If(title != "", html.Span(html.Class("admin-header-title"), g.Text(title))),
			html.Form(
				html.Class("admin-search"),
				html.Action(prefix+"/products"),
				html.Method("get"),
				g.Attr("role", "search"),
				html.Input(
					html.Type("search"),
					html.Name("q"),
					html.Placeholder("Search products..."),
					g.Attr("aria-label", "Search products"),
				),
			),
			html.Div(
				html.Class("admin-user"),
				html.Style("margin-left: auto; display: flex; align-items: center; gap: .5rem"),
				ui.Icon(nav.IconCustomers, ui.DefaultIconSize),
				html.Span(g.Text(username)),
			),
		), nil
	}
}
