package requestreset

import (
	"context"
	"errors"
	"time"

	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	e "github.com/miradam/aaa-onboarding-portal/internal/core/domain/errors"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/logging"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/reset"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"
	"github.com/miradam/aaa-onboarding-portal/internal/core/services"
)

type Input struct {
	Username c.Username
}

// Result.Issued is false when the username does not resolve to an
// account. The caller must not reveal that to the requester: both
// outcomes lead to the same generic response.
type Result struct {
	Request reset.Request
	User    user.User
	Issued  bool
}

type service struct {
	log             logging.Logger
	userRepository  user.UserRepository
	resetRepository reset.Repository
	tokenGenerator  reset.TokenGenerator
	now             func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	resetRepository reset.Repository,
	tokenGenerator reset.TokenGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if resetRepository == nil {
		panic(e.NewNilArgumentError("resetRepository"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:             log,
		userRepository:  userRepository,
		resetRepository: resetRepository,
		tokenGenerator:  tokenGenerator,
		now:             now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByUsername(ctx, input.Username)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"Password reset requested for unknown username, no request issued.",
			logging.Entry("username", input.Username),
		)
		return result, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user for password reset request.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	request := reset.Request{
		Username: u.Username,
		Token:    s.tokenGenerator.GenerateToken(),
		IssuedAt: s.now(),
	}
	err = s.resetRepository.Save(ctx, request)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not save password reset request.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset request has been issued.",
		logging.Entry("username", u.Username),
	)
	return Result{Request: request, User: u, Issued: true}, nil
}
