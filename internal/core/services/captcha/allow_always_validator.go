package captcha

import "context"

// AllowAlwaysCaptchaValidator is the stub used while CAPTCHA
// enforcement is disabled for the portal.
type AllowAlwaysCaptchaValidator struct{}

func NewAllowAlwaysCaptchaValidator() *AllowAlwaysCaptchaValidator {
	return &AllowAlwaysCaptchaValidator{}
}

func (v *AllowAlwaysCaptchaValidator) ValidateCaptchaToken(ctx context.Context, token CaptchaToken) bool {
	return true
}
