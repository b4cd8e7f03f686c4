package nav

import (
	"github.com/pkg/errors"
)

// Icon identifies a glyph rendered next to a navigation entry.
type Icon int

const (
	IconNone Icon = iota
	IconDashboard
	IconBanners
	IconBrand
	IconCategories
	IconEMI
	IconProducts
	IconOrders
	IconCustomers
	IconNotifyProducts
	IconSettings
	IconStore
	IconExit
)

var iconNames = map[Icon]string{
	IconNone:           "none",
	IconDashboard:      "dashboard",
	IconBanners:        "banners",
	IconBrand:          "brand",
	IconCategories:     "categories",
	IconEMI:            "emi",
	IconProducts:       "products",
	IconOrders:         "orders",
	IconCustomers:      "customers",
	IconNotifyProducts: "notify-products",
	IconSettings:       "settings",
	IconStore:          "store",
	IconExit:           "exit",
}

func (i Icon) String() string {
	name, exists := iconNames[i]
	if !exists {
		return "unknown"
	}

	return name
}

// LinkDescriptor is one row of the sidebar navigation.
type LinkDescriptor struct {
	Path  string
	Label string
	Icon  Icon
	// Badge is displayed as a trailing indicator when non empty.
	// It is a free-form display string, not a number.
	Badge string
}

func (l LinkDescriptor) HasBadge() bool {
	return l.Badge != ""
}

var ErrDuplicatePath = errors.New("duplicate path")

// Validate checks that no two links route to the same destination.
func Validate(links []LinkDescriptor) error {
	seen := make(map[string]struct{}, len(links))

	for _, l := range links {
		if _, exists := seen[l.Path]; exists {
			return errors.Wrapf(ErrDuplicatePath, "path '%s'", l.Path)
		}

		seen[l.Path] = struct{}{}
	}

	return nil
}
