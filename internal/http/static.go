package httpapi

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// staticHandler serves files for the storefront and admin panel mounts.
// Unlike a plain FileServer it falls through to the API's JSON 404 shape
// when the file does not exist, and never renders directory listings.
func staticHandler(prefix, dir string) http.HandlerFunc {
	fs := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
	return func(w http.ResponseWriter, r *http.Request) {
		rel := strings.TrimPrefix(r.URL.Path, prefix)
		if rel == "" || strings.HasSuffix(rel, "/") {
			rel += "index.html"
		}
		path := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+rel)))
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		fs.ServeHTTP(w, r)
	}
}
