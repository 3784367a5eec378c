// Package web embeds the built frontend (dist/) and provides an HTTP handler
// that serves it as a single-page application (SPA).
//
// In development the handler prefers the on-disk dist/ directory when one is
// configured, so edits show up without rebuilding (and can be watched for
// live reload); otherwise it falls back to the embedded copy.
package web

import (
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"
)

//go:embed all:dist
var distFS embed.FS

// SPAHandler returns an http.Handler that serves the embedded frontend.
// It serves static files from dist/, and falls back to index.html for
// any path that doesn't match a file (SPA client-side routing).
func SPAHandler() http.Handler {
	subFS, err := fs.Sub(distFS, "dist")
	if err != nil {
		panic("web: failed to create sub filesystem: " + err.Error())
	}
	return spaHandler(subFS)
}

// DiskSPAHandler serves the frontend from dir when it exists, falling back
// to the embedded copy. Development only.
func DiskSPAHandler(dir string) http.Handler {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		slog.Info("web: assets dir not found, serving embedded frontend", "dir", dir)
		return SPAHandler()
	}
	return spaHandler(os.DirFS(dir))
}

func spaHandler(root fs.FS) http.Handler {
	fileServer := http.FileServer(http.FS(root))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Try to serve the file directly.
		path := strings.TrimPrefix(r.URL.Path, "/")
		if path == "" {
			path = "index.html"
		}

		// Check if file exists in the FS.
		if f, err := root.Open(path); err == nil {
			if closeErr := f.Close(); closeErr != nil {
				slog.Debug("web: failed to close asset file", "path", path, "error", closeErr)
			}
			fileServer.ServeHTTP(w, r)
			return
		}

		// Not found — serve index.html for SPA routing.
		r.URL.Path = "/"
		fileServer.ServeHTTP(w, r)
	})
}
