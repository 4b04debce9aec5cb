package requestreset

import (
	"context"
	"errors"

	e "github.com/miradam/aaa-onboarding-portal/internal/core/domain/errors"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/logging"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/reset"
	"github.com/miradam/aaa-onboarding-portal/internal/core/services"
)

type serviceWithTokenNotification struct {
	log      logging.Logger
	notifier reset.Notifier
	inner    services.Service[Input, Result]
}

func NewWithTokenNotification(
	log logging.Logger,
	notifier reset.Notifier,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithTokenNotification{
		log:      log,
		notifier: notifier,
		inner:    inner,
	}
}

func (s *serviceWithTokenNotification) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending password reset token.", logging.Entry("err", err))
		return result, err
	}
	if !result.Issued {
		return result, nil
	}

	err = s.notifier.SendResetToken(ctx, result.User, result.Request)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		// Delivery is the notifier's concern, the issued request stays
		// valid either way.
		s.log.Error(
			ctx,
			"Could not send password reset token.",
			logging.Entry("username", result.User.Username),
			logging.Entry("err", err),
		)
		return result, nil
	}

	s.log.Info(
		ctx,
		"Password reset token has been sent to the user.",
		logging.Entry("username", result.User.Username),
	)
	return result, nil
}
