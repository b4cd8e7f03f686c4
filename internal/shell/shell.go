package shell

import (
	"context"
	"io"
	"regexp"
	"slices"

	"github.com/bornholm/comptoir/internal/deferred"
	"github.com/bornholm/comptoir/internal/nav"
	"github.com/pkg/errors"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	"maragu.dev/gomponents/html"
)

const (
	SidebarRegionID = "admin-sidebar"
	HeaderRegionID  = "admin-header"

	SidebarPlaceholder = "Loading..."

	// HTMXScriptURL is the script enabling partial navigation from the
	// sidebar links.
	HTMXScriptURL = "https://unpkg.com/htmx.org@2.0.4"
)

var ErrInvalidBreakpoint = errors.New("invalid breakpoint")

var breakpointPattern = regexp.MustCompile(`^\d+(\.\d+)?(px|em|rem)$`)

// Shell is the persistent layout wrapping every admin page.
type Shell struct {
	opts *Options
}

// Page is the content rendered inside the shell.
type Page struct {
	Title       string
	Description string
	// ActivePath is the request path, used to highlight the current entry.
	ActivePath string
	Content    g.Node
}

func New(funcs ...OptionFunc) (*Shell, error) {
	opts := NewOptions(funcs...)

	if err := nav.Validate(opts.Links); err != nil {
		return nil, errors.WithStack(err)
	}

	if !breakpointPattern.MatchString(opts.Breakpoint) {
		return nil, errors.Wrapf(ErrInvalidBreakpoint, "'%s' is not a length in px, em or rem", opts.Breakpoint)
	}

	opts.Links = slices.Clone(opts.Links)

	if opts.Header == nil {
		opts.Header = NewOptions().Header
	}

	return &Shell{opts: opts}, nil
}

type contextKey struct{}

// ContextPage returns the page being rendered by the shell. The header
// collaborator uses it to display the page title.
func ContextPage(ctx context.Context) (Page, bool) {
	page, ok := ctx.Value(contextKey{}).(Page)
	return page, ok
}

// withMetadata fills the empty metadata of page with the shell defaults.
func (s *Shell) withMetadata(page Page) Page {
	if page.Title == "" {
		page.Title = s.opts.Title
	}

	if page.Description == "" {
		page.Description = s.opts.Description
	}

	return page
}

func (s *Shell) regions(page Page) (sidebar deferred.Region, header deferred.Region) {
	sidebar = deferred.Static(SidebarRegionID, g.Text(SidebarPlaceholder), s.Sidebar(page.ActivePath))

	header = deferred.Region{
		ID:       HeaderRegionID,
		Fallback: headerFiller(),
		Resolve:  deferred.ResolveFunc(s.opts.Header),
	}

	return sidebar, header
}

// Render writes the whole page to w. The sidebar and header regions are sent
// as placeholders first and swapped in as soon as each one resolves.
func (s *Shell) Render(ctx context.Context, w io.Writer, page Page) error {
	page = s.withMetadata(page)
	ctx = context.WithValue(ctx, contextKey{}, page)

	sidebar, header := s.regions(page)

	document := components.HTML5(components.HTML5Props{
		Title:       page.Title,
		Description: page.Description,
		Language:    "en",
		Head: []g.Node{
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.StyleEl(g.Raw(s.Stylesheet())),
			deferred.SwapScript(),
			html.Script(html.Src(HTMXScriptURL), g.Attr("crossorigin", "anonymous")),
		},
		Body: []g.Node{
			html.Div(
				html.Class("admin-shell"),
				html.Aside(
					html.Class("admin-sidebar"),
					sidebar.Placeholder(),
				),
				html.Div(
					html.Class("admin-main"),
					header.Placeholder(),
					html.Main(
						html.ID("content"),
						html.Class("admin-content"),
						page.Content,
					),
				),
			),
			deferred.Await(ctx, w, sidebar, header),
		},
	})

	if err := document.Render(w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// RenderPartial writes the content of page followed by out of band
// replacements of the sidebar and the header, for a navigation swapping
// only the content area. A failing header is returned as a
// *deferred.RegionError once the content and the sidebar are written.
func (s *Shell) RenderPartial(ctx context.Context, w io.Writer, page Page) error {
	page = s.withMetadata(page)
	ctx = context.WithValue(ctx, contextKey{}, page)

	sidebar, header := s.regions(page)

	content := g.Group{
		page.Content,
		OutOfBand(sidebar.ID, s.Sidebar(page.ActivePath)),
	}

	if err := content.Render(w); err != nil {
		return errors.WithStack(err)
	}

	node, err := deferred.Settle(ctx, header)
	if err != nil {
		return err
	}

	if err := OutOfBand(header.ID, node).Render(w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// OutOfBand returns node wrapped so that it replaces the region identified
// by id when it is part of a partial response.
func OutOfBand(id string, node g.Node) g.Node {
	return html.Div(
		html.ID(id),
		g.Attr("data-deferred", "resolved"),
		g.Attr("hx-swap-oob", "true"),
		node,
	)
}

// headerFiller keeps the header area at its final height while the header
// resolves.
func headerFiller() g.Node {
	return html.Div(
		html.Class("admin-header-filler"),
		html.Style("min-height: 4rem"),
	)
}
