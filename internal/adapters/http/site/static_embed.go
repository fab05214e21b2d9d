package site

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static/*
var staticFS embed.FS

// indexHTML contains the embedded UI entry page, served on its own route
// because the file server redirects any path ending in /index.html.
//
//go:embed static/index.html
var indexHTML []byte

// contentFS exposes a sub-filesystem rooted at static/.
var contentFS fs.FS = func() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return staticFS
	}
	return sub
}()

// FS returns an http.FileSystem for the embedded front end.
func FS() http.FileSystem {
	return http.FS(contentFS)
}
