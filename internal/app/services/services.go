package services

import (
	"github.com/miradam/aaa-onboarding-portal/internal/app/deps"
	"github.com/miradam/aaa-onboarding-portal/internal/core/services"
	approvereset "github.com/miradam/aaa-onboarding-portal/internal/core/services/approve_reset"
	"github.com/miradam/aaa-onboarding-portal/internal/core/services/captcha"
	registeruser "github.com/miradam/aaa-onboarding-portal/internal/core/services/register_user"
	requestreset "github.com/miradam/aaa-onboarding-portal/internal/core/services/request_reset"
)

type Services struct {
	RegisterUser services.Service[registeruser.Input, registeruser.Result]
	RequestReset services.Service[requestreset.Input, requestreset.Result]
	ApproveReset services.Service[approvereset.Input, approvereset.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.RegisterUser = captcha.WithCaptcha(
		deps.CaptchaValidator,
		registeruser.NewWithAdminNotification(
			deps.Logger,
			deps.Notifier,
			registeruser.New(
				deps.Logger,
				deps.UserRepository,
				deps.PasswordHasher,
				deps.Now,
			),
		),
	)
	s.RequestReset = captcha.WithCaptcha(
		deps.CaptchaValidator,
		requestreset.NewWithTokenNotification(
			deps.Logger,
			deps.Notifier,
			requestreset.New(
				deps.Logger,
				deps.UserRepository,
				deps.ResetRepository,
				deps.TokenGenerator,
				deps.Now,
			),
		),
	)
	s.ApproveReset = approvereset.New(
		deps.Logger,
		deps.UserRepository,
		deps.ResetRepository,
		deps.PasswordGenerator,
		deps.PasswordHasher,
		deps.Config.ResetRequestTTL,
		deps.Now,
	)

	return s
}
