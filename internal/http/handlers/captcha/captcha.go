package captcha

import (
	"context"
	"net/http"

	"github.com/miradam/aaa-onboarding-portal/internal/core/services/captcha"
)

// SetCaptchaTokenToContext picks the captcha token up from the submitted
// form (or the X-Captcha-Token header) and puts it on the request context
// for the captcha-protected services.
func SetCaptchaTokenToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Captcha-Token")
		if token == "" && r.Method == http.MethodPost {
			token = r.PostFormValue("captcha_token")
		}
		if token != "" {
			ctx := context.WithValue(r.Context(), captcha.CONTEXT_CAPTCHA_TOKEN_KEY, captcha.CaptchaToken(token))
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}
