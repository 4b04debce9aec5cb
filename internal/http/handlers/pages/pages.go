package pages

import (
	"net/http"

	e "github.com/miradam/aaa-onboarding-portal/internal/core/domain/errors"
	"github.com/miradam/aaa-onboarding-portal/internal/http/render"
)

// Static renders a template that takes no binding.
type Static struct {
	renderer *render.Renderer
	template string
}

func NewStatic(renderer *render.Renderer, template string) *Static {
	if renderer == nil {
		panic(e.NewNilArgumentError("renderer"))
	}
	return &Static{renderer: renderer, template: template}
}

func (h *Static) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(rw, http.StatusOK, h.template, nil)
}
