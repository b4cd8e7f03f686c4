package shell

import (
	"context"

	"github.com/bornholm/comptoir/internal/nav"
	g "maragu.dev/gomponents"
)

// HeaderFunc renders the header region. It may block while it gathers its
// own data, the rest of the page is displayed meanwhile.
type HeaderFunc func(ctx context.Context) (g.Node, error)

type Options struct {
	Header          HeaderFunc
	Links           []nav.LinkDescriptor
	Breakpoint      string
	BrandLabel      string
	BrandURL        string
	StorefrontLabel string
	StorefrontURL   string
	Title           string
	Description     string
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Header: func(ctx context.Context) (g.Node, error) {
			return nil, nil
		},
		Links:           nav.All(),
		Breakpoint:      "768px",
		BrandLabel:      "Admin",
		BrandURL:        "/admin",
		StorefrontLabel: "Back to store",
		StorefrontURL:   "/",
		Title:           "Admin Dashboard",
		Description:     "Manage your store",
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithHeader(header HeaderFunc) OptionFunc {
	return func(opts *Options) {
		opts.Header = header
	}
}

func WithLinks(links []nav.LinkDescriptor) OptionFunc {
	return func(opts *Options) {
		opts.Links = links
	}
}

// WithBreakpoint sets the viewport width above which the sidebar is displayed.
func WithBreakpoint(breakpoint string) OptionFunc {
	return func(opts *Options) {
		opts.Breakpoint = breakpoint
	}
}

func WithBrand(label, url string) OptionFunc {
	return func(opts *Options) {
		opts.BrandLabel = label
		opts.BrandURL = url
	}
}

func WithStorefront(label, url string) OptionFunc {
	return func(opts *Options) {
		opts.StorefrontLabel = label
		opts.StorefrontURL = url
	}
}

func WithMetadata(title, description string) OptionFunc {
	return func(opts *Options) {
		opts.Title = title
		opts.Description = description
	}
}
