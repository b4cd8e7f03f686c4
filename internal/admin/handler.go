package admin

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bornholm/comptoir/internal/nav"
	"github.com/bornholm/comptoir/internal/shell"
)

type Handler struct {
	prefix string
	shell  *shell.Shell
	mux    *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string, sh *shell.Shell) *Handler {
	handler := &Handler{
		prefix: prefix,
		shell:  sh,
		mux:    &http.ServeMux{},
	}

	// Register one route per navigation entry
	for link := range nav.Links() {
		if link.Path == prefix {
			handler.mux.HandleFunc(fmt.Sprintf("GET %s", prefix), handler.servePage(link, "dashboard"))
			handler.mux.HandleFunc(fmt.Sprintf("GET %s/{$}", prefix), handler.servePage(link, "dashboard"))
			continue
		}

		handler.mux.HandleFunc(fmt.Sprintf("GET %s", link.Path), handler.servePage(link, "section"))
	}

	return handler
}

// slug returns the section identifier of a navigation path.
func (h *Handler) slug(path string) string {
	slug := strings.TrimPrefix(path, h.prefix)
	slug = strings.Trim(slug, "/")
	if slug == "" {
		return "dashboard"
	}

	return slug
}

var _ http.Handler = &Handler{}
