package http

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed templates
var templatesFS embed.FS

//go:embed assets
var assetsFS embed.FS

// Templates returns the embedded template set rooted at the *.html files.
func Templates() fs.FS {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Assets returns a handler serving the embedded static files. Paths keep
// the assets/ prefix, so the handler can be mounted at /assets directly.
func Assets() http.Handler {
	return http.FileServer(http.FS(assetsFS))
}
