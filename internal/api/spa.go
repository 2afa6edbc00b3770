package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// WithUI wraps the API handler with static serving for the browser UI.
// Requests outside /api/ resolve against webDir and fall back to index.html.
func WithUI(apiHandler http.Handler, webDir string) http.Handler {
	fileServer := http.FileServer(http.Dir(webDir))
	indexPath := filepath.Join(webDir, "index.html")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			apiHandler.ServeHTTP(w, r)
			return
		}

		cleanPath := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if cleanPath != "" && cleanPath != "." {
			fullPath := filepath.Join(webDir, cleanPath)
			if info, err := os.Stat(fullPath); err == nil && !info.IsDir() {
				w.Header().Set("Cache-Control", "no-store")
				fileServer.ServeHTTP(w, r)
				return
			}
		}

		if _, err := os.Stat(indexPath); err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		http.ServeFile(w, r, indexPath)
	})
}
