package registeruser

import (
	"context"
	"errors"

	e "github.com/miradam/aaa-onboarding-portal/internal/core/domain/errors"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/logging"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"
	"github.com/miradam/aaa-onboarding-portal/internal/core/services"
)

// AdminNotifier tells the portal administrators that somebody signed
// up and is waiting for approval.
type AdminNotifier interface {
	SendSignUpNotice(ctx context.Context, u user.User) error
}

type serviceWithAdminNotification struct {
	log      logging.Logger
	notifier AdminNotifier
	inner    services.Service[Input, Result]
}

func NewWithAdminNotification(
	log logging.Logger,
	notifier AdminNotifier,
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
	return &serviceWithAdminNotification{
		log:      log,
		notifier: notifier,
		inner:    inner,
	}
}

func (s *serviceWithAdminNotification) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending sign-up notice.", logging.Entry("err", err))
		return result, err
	}

	err = s.notifier.SendSignUpNotice(ctx, result.User)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		// Registration succeeded, the admin notice is best-effort.
		s.log.Error(
			ctx,
			"Could not send sign-up notice.",
			logging.Entry("username", result.User.Username),
			logging.Entry("err", err),
		)
		return result, nil
	}

	s.log.Info(
		ctx,
		"Sign-up notice has been sent to the administrators.",
		logging.Entry("username", result.User.Username),
	)
	return result, nil
}
