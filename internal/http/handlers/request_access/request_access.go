package requestaccess

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	e "github.com/miradam/aaa-onboarding-portal/internal/core/domain/errors"
	"github.com/miradam/aaa-onboarding-portal/internal/core/services"
	"github.com/miradam/aaa-onboarding-portal/internal/core/services/captcha"
	requestreset "github.com/miradam/aaa-onboarding-portal/internal/core/services/request_reset"
	"github.com/miradam/aaa-onboarding-portal/internal/http/render"
)

type Handler struct {
	service  services.Service[requestreset.Input, requestreset.Result]
	renderer *render.Renderer
}

func New(
	service services.Service[requestreset.Input, requestreset.Result],
	renderer *render.Renderer,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if renderer == nil {
		panic(e.NewNilArgumentError("renderer"))
	}
	return &Handler{service: service, renderer: renderer}
}

type Input struct {
	Username string
}

func (i *Input) FromForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	i.Username = r.PostFormValue("username")
	return nil
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required, validation.Length(1, 64)),
	)
}

// ServeHTTP responds with the same generic completion redirect whether or
// not the username resolves to an account.
func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.renderForm(rw, http.StatusOK, Input{}, nil)
		return
	}

	input := Input{}
	if err := input.FromForm(r); err != nil {
		h.renderForm(rw, http.StatusBadRequest, input, []string{"Invalid form data."})
		return
	}
	if err := input.Validate(); err != nil {
		h.renderForm(rw, http.StatusUnprocessableEntity, input, []string{"Please enter your username."})
		return
	}

	_, err := h.service.Run(r.Context(), requestreset.Input{Username: c.NewUsername(input.Username)})
	if errors.Is(err, captcha.ErrInvalidCaptcha) {
		h.renderForm(rw, http.StatusUnprocessableEntity, input, []string{"Captcha validation failed."})
		return
	}
	if err != nil {
		h.renderer.Error(rw)
		return
	}

	http.Redirect(rw, r, "/complete", http.StatusSeeOther)
}

func (h *Handler) renderForm(rw http.ResponseWriter, status int, input Input, errs []string) {
	h.renderer.HTML(rw, status, "request_access", map[string]interface{}{
		"username": input.Username,
		"errors":   errs,
	})
}
