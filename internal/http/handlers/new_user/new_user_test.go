package newuser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/logging"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"
	registeruser "github.com/miradam/aaa-onboarding-portal/internal/core/services/register_user"
	portalhttp "github.com/miradam/aaa-onboarding-portal/internal/http"
	"github.com/miradam/aaa-onboarding-portal/internal/http/render"
)

type stubService struct {
	err   error
	input *registeruser.Input
}

func (s *stubService) Run(
	ctx context.Context,
	input registeruser.Input,
) (result registeruser.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	return result, nil
}

func newHandler(t *testing.T, service *stubService) *Handler {
	renderer, err := render.New(portalhttp.Templates(), logging.NewFakeLogger())
	require.NoError(t, err)
	return New(service, renderer)
}

func validForm() url.Values {
	return url.Values{
		"username":   {"ivan"},
		"first_name": {"Ivan"},
		"last_name":  {"Petrov"},
		"email":      {"ivan@test.com"},
		"password":   {"long-enough-password"},
	}
}

func TestNewUserGetRendersEmptyForm(t *testing.T) {
	service := &stubService{}
	handler := newHandler(t, service)

	req := httptest.NewRequest(http.MethodGet, "/new_user", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign up for an account")
	assert.Nil(t, service.input)
}

func TestNewUserSuccessRedirectsToComplete(t *testing.T) {
	service := &stubService{}
	handler := newHandler(t, service)

	rec := postForm(handler, validForm())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/complete", rec.Header().Get("Location"))
	if assert.NotNil(t, service.input) {
		assert.Equal(t, c.Username("ivan"), service.input.Username)
		assert.Equal(t, c.Email("ivan@test.com"), service.input.Email)
		assert.Equal(t, "Ivan", service.input.FirstName)
		assert.Equal(t, "Petrov", service.input.LastName)
		assert.Equal(t, user.RawPassword("long-enough-password"), service.input.Password)
	}
}

func TestNewUserValidation(t *testing.T) {
	cases := []struct {
		id     string
		mutate func(form url.Values)
	}{
		{id: "missing username", mutate: func(f url.Values) { f.Del("username") }},
		{id: "username with spaces", mutate: func(f url.Values) { f.Set("username", "ivan petrov") }},
		{id: "missing email", mutate: func(f url.Values) { f.Del("email") }},
		{id: "invalid email", mutate: func(f url.Values) { f.Set("email", "not-an-email") }},
		{id: "short password", mutate: func(f url.Values) { f.Set("password", "short") }},
		{id: "missing first name", mutate: func(f url.Values) { f.Del("first_name") }},
		{id: "missing last name", mutate: func(f url.Values) { f.Del("last_name") }},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			service := &stubService{}
			handler := newHandler(t, service)

			form := validForm()
			testcase.mutate(form)
			rec := postForm(handler, form)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Nil(t, service.input)
		})
	}
}

func TestNewUserDuplicateReRendersForm(t *testing.T) {
	cases := []struct {
		id           string
		err          error
		expectedBody string
	}{
		{
			id:           "duplicate username",
			err:          user.ErrUsernameAlreadyExists,
			expectedBody: "This username is already taken.",
		},
		{
			id:           "duplicate email",
			err:          user.ErrEmailAlreadyExists,
			expectedBody: "An account with this email already exists.",
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			service := &stubService{err: testcase.err}
			handler := newHandler(t, service)

			rec := postForm(handler, validForm())

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), testcase.expectedBody)
			// Submitted values survive the round trip.
			assert.Contains(t, rec.Body.String(), `value="ivan"`)
		})
	}
}

func TestNewUserInternalErrorRendersErrorPage(t *testing.T) {
	service := &stubService{err: assert.AnError}
	handler := newHandler(t, service)

	rec := postForm(handler, validForm())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
}

func postForm(handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/new_user", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
