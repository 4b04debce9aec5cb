package approveaccess

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	e "github.com/miradam/aaa-onboarding-portal/internal/core/domain/errors"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/reset"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"
	"github.com/miradam/aaa-onboarding-portal/internal/core/services"
	approvereset "github.com/miradam/aaa-onboarding-portal/internal/core/services/approve_reset"
	"github.com/miradam/aaa-onboarding-portal/internal/http/render"
)

// Handler drives the reset approval form. The same handler serves both the
// approval path linked from the reset email and the management path, the
// action parameter sets the form target.
type Handler struct {
	service  services.Service[approvereset.Input, approvereset.Result]
	renderer *render.Renderer
	action   string
}

func New(
	service services.Service[approvereset.Input, approvereset.Result],
	renderer *render.Renderer,
	action string,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	if renderer == nil {
		panic(e.NewNilArgumentError("renderer"))
	}
	return &Handler{service: service, renderer: renderer, action: action}
}

type Input struct {
	Username string
	Token    string
}

func (i *Input) FromForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	i.Username = r.PostFormValue("username")
	i.Token = r.PostFormValue("token")
	return nil
}

func (i *Input) FromQuery(r *http.Request) {
	i.Username = r.URL.Query().Get("username")
	i.Token = r.URL.Query().Get("token")
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required, validation.Length(1, 64)),
		validation.Field(&i.Token, validation.Required, validation.Length(1, 1024)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		input := Input{}
		input.FromQuery(r)
		h.renderForm(rw, http.StatusOK, input, nil)
		return
	}

	input := Input{}
	if err := input.FromForm(r); err != nil {
		h.renderForm(rw, http.StatusBadRequest, input, []string{"Invalid form data."})
		return
	}
	if err := input.Validate(); err != nil {
		h.renderForm(rw, http.StatusUnprocessableEntity, input, []string{"Both username and token are required."})
		return
	}

	result, err := h.service.Run(
		r.Context(),
		approvereset.Input{
			Username: c.NewUsername(input.Username),
			Token:    reset.Token(input.Token),
		},
	)
	if errors.Is(err, reset.ErrInvalidToken) ||
		errors.Is(err, reset.ErrRequestDoesNotExist) ||
		errors.Is(err, user.ErrUserDoesNotExist) {
		h.renderer.HTML(rw, http.StatusUnprocessableEntity, "invalid_token", nil)
		return
	}
	if err != nil {
		h.renderer.Error(rw)
		return
	}

	h.renderer.HTML(rw, http.StatusOK, "display_password", map[string]interface{}{
		"password": string(result.NewPassword),
	})
}

func (h *Handler) renderForm(rw http.ResponseWriter, status int, input Input, errs []string) {
	h.renderer.HTML(rw, status, "approve_access", map[string]interface{}{
		"action":   h.action,
		"username": input.Username,
		"token":    input.Token,
		"errors":   errs,
	})
}
