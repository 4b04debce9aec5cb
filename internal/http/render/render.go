package render

import (
	"bytes"
	"context"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/django/v3"

	e "github.com/miradam/aaa-onboarding-portal/internal/core/domain/errors"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/logging"
)

// Renderer renders HTML pages from the embedded template set.
type Renderer struct {
	engine *django.Engine
	log    logging.Logger
}

// New creates a Renderer from a file system that contains *.html templates
// at its root. Templates are addressed by base name without the extension.
func New(templates fs.FS, log logging.Logger) (*Renderer, error) {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	engine := django.NewFileSystem(http.FS(templates), ".html")
	if err := engine.Load(); err != nil {
		return nil, err
	}
	return &Renderer{engine: engine, log: log}, nil
}

// HTML renders the named template with the given binding and writes it with
// the given status code. The template is rendered to a buffer first so that a
// rendering failure produces a plain 500 instead of a half-written page.
func (r *Renderer) HTML(
	rw http.ResponseWriter,
	status int,
	template string,
	binding map[string]interface{},
) {
	buf := &bytes.Buffer{}
	if err := r.engine.Render(buf, template, binding); err != nil {
		logging.Error(context.Background(), r.log, err, logging.Entry("template", template))
		http.Error(rw, "Internal server error.", http.StatusInternalServerError)
		return
	}
	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	rw.WriteHeader(status)
	_, _ = rw.Write(buf.Bytes())
}

// Error renders the generic error page with a 500 status.
func (r *Renderer) Error(rw http.ResponseWriter) {
	r.HTML(rw, http.StatusInternalServerError, "error", nil)
}
