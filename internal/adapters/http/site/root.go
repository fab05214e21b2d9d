// Package site serves the embedded student-facing front end.
package site

import (
	"context"
	"net/http"
)

// indexPath is where the root path redirects to.
const indexPath = "/static/index.html"

// Register attaches the static file server and the root redirect to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// Serve the entry page directly: net/http canonicalizes any path
	// ending in /index.html with a 301 to ./, which would turn the root
	// redirect target into a second hop.
	mux.HandleFunc(indexPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(indexHTML)
	})

	files := http.FileServer(FS())
	mux.Handle("/static/", http.StripPrefix("/static/", files))

	root := NewRootHandler()
	mux.HandleFunc("/", root.HandleRoot)
}

// RootHandler redirects the bare root path to the UI entry page.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

// HandleRoot handles GET / requests with a 307 redirect to the UI. Any
// other unmatched path falls through to 404.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, indexPath, http.StatusTemporaryRedirect)
}
