package requestaccess

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
	requestreset "github.com/miradam/aaa-onboarding-portal/internal/core/services/request_reset"
	portalhttp "github.com/miradam/aaa-onboarding-portal/internal/http"
	"github.com/miradam/aaa-onboarding-portal/internal/http/render"
)

type stubService struct {
	issued bool
	err    error
	input  *requestreset.Input
}

func (s *stubService) Run(
	ctx context.Context,
	input requestreset.Input,
) (result requestreset.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.Issued = s.issued
	return result, nil
}

func newHandler(t *testing.T, service *stubService) *Handler {
	renderer, err := render.New(portalhttp.Templates(), logging.NewFakeLogger())
	require.NoError(t, err)
	return New(service, renderer)
}

func TestRequestAccessGetRendersForm(t *testing.T) {
	service := &stubService{}
	handler := newHandler(t, service)

	req := httptest.NewRequest(http.MethodGet, "/request_access", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reset your password")
	assert.Nil(t, service.input)
}

func TestRequestAccessRedirectsIdentically(t *testing.T) {
	cases := []struct {
		id     string
		issued bool
	}{
		{id: "request issued for known username", issued: true},
		{id: "nothing issued for unknown username", issued: false},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			service := &stubService{issued: testcase.issued}
			handler := newHandler(t, service)

			rec := postForm(handler, url.Values{"username": {"Ivan"}})

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/complete", rec.Header().Get("Location"))
			if assert.NotNil(t, service.input) {
				assert.Equal(t, c.Username("ivan"), service.input.Username)
			}
		})
	}
}

func TestRequestAccessEmptyUsername(t *testing.T) {
	service := &stubService{}
	handler := newHandler(t, service)

	rec := postForm(handler, url.Values{})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Nil(t, service.input)
}

func TestRequestAccessInternalErrorRendersErrorPage(t *testing.T) {
	service := &stubService{err: assert.AnError}
	handler := newHandler(t, service)

	rec := postForm(handler, url.Values{"username": {"ivan"}})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
}

func postForm(handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/request_access", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
