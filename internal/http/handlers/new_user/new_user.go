package newuser

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	e "github.com/miradam/aaa-onboarding-portal/internal/core/domain/errors"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"
	"github.com/miradam/aaa-onboarding-portal/internal/core/services"
	"github.com/miradam/aaa-onboarding-portal/internal/core/services/captcha"
	registeruser "github.com/miradam/aaa-onboarding-portal/internal/core/services/register_user"
	"github.com/miradam/aaa-onboarding-portal/internal/http/render"
)

type Handler struct {
	service  services.Service[registeruser.Input, registeruser.Result]
	renderer *render.Renderer
}

func New(
	service services.Service[registeruser.Input, registeruser.Result],
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
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func (i *Input) FromForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	i.Username = r.PostFormValue("username")
	i.FirstName = r.PostFormValue("first_name")
	i.LastName = r.PostFormValue("last_name")
	i.Email = r.PostFormValue("email")
	i.Password = r.PostFormValue("password")
	return nil
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(
			&i.Username,
			validation.Required,
			validation.Length(2, 64),
			is.Alphanumeric,
		),
		validation.Field(&i.FirstName, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.LastName, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Email, validation.Required, is.EmailFormat),
		validation.Field(&i.Password, validation.Required, validation.Length(8, 256)),
	)
}

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
		h.renderForm(rw, http.StatusUnprocessableEntity, input, validationErrors(err))
		return
	}

	_, err := h.service.Run(
		r.Context(),
		registeruser.Input{
			Username:  c.NewUsername(input.Username),
			Email:     c.NewEmail(input.Email),
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Password:  user.RawPassword(input.Password),
		},
	)
	if errors.Is(err, captcha.ErrInvalidCaptcha) {
		h.renderForm(rw, http.StatusUnprocessableEntity, input, []string{"Captcha validation failed."})
		return
	}
	if errors.Is(err, user.ErrUsernameAlreadyExists) {
		h.renderForm(rw, http.StatusUnprocessableEntity, input, []string{"This username is already taken."})
		return
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		h.renderForm(rw, http.StatusUnprocessableEntity, input, []string{"An account with this email already exists."})
		return
	}
	if err != nil {
		h.renderer.Error(rw)
		return
	}

	http.Redirect(rw, r, "/complete", http.StatusSeeOther)
}

func (h *Handler) renderForm(rw http.ResponseWriter, status int, input Input, errs []string) {
	h.renderer.HTML(rw, status, "new_user", map[string]interface{}{
		"user":   input,
		"errors": errs,
	})
}

func validationErrors(err error) []string {
	validationErrs, ok := err.(validation.Errors)
	if !ok {
		return []string{err.Error()}
	}
	errs := make([]string, 0, len(validationErrs))
	for field, fieldErr := range validationErrs {
		errs = append(errs, field+": "+fieldErr.Error())
	}
	return errs
}
