package admin

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/bornholm/comptoir/internal/authn"
	"github.com/bornholm/comptoir/internal/deferred"
	"github.com/bornholm/comptoir/internal/nav"
	"github.com/bornholm/comptoir/internal/shell"
	"github.com/bornholm/comptoir/internal/ui"
	"github.com/bornholm/comptoir/pkg/log"
	"github.com/pkg/errors"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func (h *Handler) servePage(link nav.LinkDescriptor, view string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		data := h.getPageData(ctx, link)

		// Render the content first, nothing is sent if it fails
		var content bytes.Buffer
		if err := templates.ExecuteTemplate(&content, view, data); err != nil {
			slog.ErrorContext(ctx, "could not execute template", log.Error(errors.WithStack(err)), slog.String("view", view))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Add("Vary", "HX-Request")

		page := shell.Page{
			Title:      pageTitle(link),
			ActivePath: r.URL.Path,
			Content:    g.Raw(content.String()),
		}

		// Partial navigation swaps the content, sidebar and header are refreshed out of band
		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Push-Url", r.URL.Path)

			if err := h.shell.RenderPartial(ctx, w, page); err != nil {
				h.handleRenderError(w, r, err, true)
			}

			return
		}

		if err := h.shell.Render(ctx, w, page); err != nil {
			h.handleRenderError(w, r, err, false)
			return
		}
	}
}

// handleRenderError acts as the error boundary of the admin pages. The
// response is already committed when a deferred region fails, so the failed
// region is replaced by an error notice.
func (h *Handler) handleRenderError(w http.ResponseWriter, r *http.Request, err error, partial bool) {
	ctx := r.Context()

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		slog.DebugContext(ctx, "page rendering abandoned", log.Error(err))
		return
	}

	slog.ErrorContext(ctx, "could not render page", log.Error(errors.WithStack(err)))

	var regionErr *deferred.RegionError
	if !errors.As(err, &regionErr) {
		return
	}

	replace := deferred.Replace
	if partial {
		replace = func(w io.Writer, id string, node g.Node) error {
			return shell.OutOfBand(id, node).Render(w)
		}
	}

	if err := replace(w, regionErr.ID, errorNotice()); err != nil {
		slog.ErrorContext(ctx, "could not replace failed region", log.Error(errors.WithStack(err)), slog.String("region", regionErr.ID))
	}
}

func errorNotice() g.Node {
	return html.Div(
		html.Class("region-error"),
		g.Attr("role", "alert"),
		g.Text("Something went wrong while loading this section."),
	)
}

func (h *Handler) getPageData(ctx context.Context, link nav.LinkDescriptor) any {
	head := ui.HeadTemplateData{
		PageTitle: link.Label,
	}

	slug := h.slug(link.Path)
	if slug != "dashboard" {
		return ui.SectionTemplateData{
			HeadTemplateData: head,
			Slug:             slug,
			Label:            link.Label,
		}
	}

	sections := make([]nav.LinkDescriptor, 0)
	for l := range nav.Links() {
		if l.Path == link.Path {
			continue
		}

		sections = append(sections, l)
	}

	return DashboardTemplateData{
		HeadTemplateData: head,
		Username:         getUserDisplayName(ctx),
		Sections:         sections,
		SectionCount:     len(sections),
	}
}

func pageTitle(link nav.LinkDescriptor) string {
	return link.Label + " - Admin"
}

// Helper function to get user display name
func getUserDisplayName(ctx context.Context) string {
	user, err := authn.ContextUser(ctx)
	if err != nil {
		return "Admin"
	}

	if name := authn.DisplayName(user); name != "" {
		return name
	}

	return "Admin"
}
