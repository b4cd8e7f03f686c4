package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/xraph/forgeui/icons"

	"github.com/bornholm/comptoir/internal/nav"
)

const DefaultIconSize = 18

// Icon resolves a navigation icon reference to its glyph.
func Icon(icon nav.Icon, size int) g.Node {
	s := icons.WithSize(size)
	c := icons.WithClass("icon icon-" + icon.String())

	switch icon {
	case nav.IconDashboard:
		return icons.LayoutDashboard(s, c)
	case nav.IconBanners:
		return icons.Layers(s, c)
	case nav.IconBrand:
		return icons.Shield(s, c)
	case nav.IconCategories:
		return icons.LayoutTemplate(s, c)
	case nav.IconEMI:
		return icons.CreditCard(s, c)
	case nav.IconProducts:
		return icons.Box(s, c)
	case nav.IconOrders:
		return icons.Inbox(s, c)
	case nav.IconCustomers:
		return icons.User(s, c)
	case nav.IconNotifyProducts:
		return icons.Bell(s, c)
	case nav.IconSettings:
		return icons.Settings(s, c)
	case nav.IconStore:
		return icons.Home(s, c)
	case nav.IconExit:
		return icons.LogOut(s, c)
	default:
		return html.Span(
			html.Class("icon icon-fallback"),
			g.Attr("aria-hidden", "true"),
			g.Text("•"),
		)
	}
}
