package nav

import (
	"iter"
	"slices"
)

// links is the admin navigation table. It is never mutated after package
// initialization and only leaves this package as copies.
var links = []LinkDescriptor{
	{Path: "/admin", Label: "Dashboard", Icon: IconDashboard},
	{Path: "/admin/banners", Label: "Banners", Icon: IconBanners},
	{Path: "/admin/brand", Label: "Brand", Icon: IconBrand},
	{Path: "/admin/categories", Label: "Categories", Icon: IconCategories},
	{Path: "/admin/emi", Label: "EMI Plans", Icon: IconEMI},
	{Path: "/admin/products", Label: "Products", Icon: IconProducts},
	{Path: "/admin/orders", Label: "Orders", Icon: IconOrders, Badge: "12"},
	{Path: "/admin/customers", Label: "Customers", Icon: IconCustomers},
	{Path: "/admin/notify-products", Label: "Notify Products", Icon: IconNotifyProducts, Badge: "new"},
	{Path: "/admin/settings", Label: "Settings", Icon: IconSettings},
}

func init() {
	if err := Validate(links); err != nil {
		panic(err)
	}
}

// Links iterates over the navigation table in display order.
func Links() iter.Seq[LinkDescriptor] {
	return slices.Values(links)
}

// All returns a copy of the navigation table.
func All() []LinkDescriptor {
	return slices.Clone(links)
}
