// Package pprof exposes the runtime profiling endpoints under a path prefix.
package pprof

import (
	"expvar"
	"net/http"
	"net/http/pprof"
)

type Handler struct {
	mux *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(prefix string) *Handler {
	mux := &http.ServeMux{}

	routes := map[string]http.Handler{
		"/":        http.HandlerFunc(pprof.Index),
		"/cmdline": http.HandlerFunc(pprof.Cmdline),
		"/profile": http.HandlerFunc(pprof.Profile),
		"/symbol":  http.HandlerFunc(pprof.Symbol),
		"/trace":   http.HandlerFunc(pprof.Trace),
		"/vars":    expvar.Handler(),
		"/{name}": http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pprof.Handler(r.PathValue("name")).ServeHTTP(w, r)
		}),
	}

	for path, handler := range routes {
		mux.Handle("GET "+prefix+path, handler)
	}

	return &Handler{mux}
}

var _ http.Handler = &Handler{}
