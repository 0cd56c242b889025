// AngelaMos | 2026
// spa.go

package web

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

// SPA serves a built single-page app from dir. Unknown paths fall back to
// index.html so client-side routes survive a reload. API and probe paths
// are never answered with the app shell.
type SPA struct {
	root       fs.FS
	fileServer http.Handler
	reserved   []string
}

// NewSPA returns nil when dir does not hold an index.html.
func NewSPA(dir string, reservedPrefixes ...string) *SPA {
	if dir == "" {
		return nil
	}

	root := os.DirFS(dir)
	if _, err := fs.Stat(root, "index.html"); err != nil {
		return nil
	}

	return &SPA{
		root:       root,
		fileServer: http.FileServerFS(root),
		reserved:   reservedPrefixes,
	}
}

func (s *SPA) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	for _, prefix := range s.reserved {
		if r.URL.Path == prefix || strings.HasPrefix(r.URL.Path, prefix+"/") {
			http.NotFound(w, r)
			return
		}
	}

	name := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
	if name == "" {
		s.serveIndex(w, r)
		return
	}

	info, err := fs.Stat(s.root, name)
	if err != nil || info.IsDir() {
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		s.serveIndex(w, r)
		return
	}

	s.fileServer.ServeHTTP(w, r)
}

func (s *SPA) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFileFS(w, r, s.root, "index.html")
}
