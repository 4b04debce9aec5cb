package approvereset

import (
	"context"
	"crypto/subtle"
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
	Token    reset.Token
}

type Result struct {
	NewPassword user.RawPassword
}

type service struct {
	log               logging.Logger
	userRepository    user.UserRepository
	resetRepository   reset.Repository
	passwordGenerator reset.PasswordGenerator
	passwordHasher    user.PasswordHasher
	validDuration     time.Duration
	now               func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	resetRepository reset.Repository,
	passwordGenerator reset.PasswordGenerator,
	passwordHasher user.PasswordHasher,
	validDuration time.Duration,
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
	if passwordGenerator == nil {
		panic(e.NewNilArgumentError("passwordGenerator"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		userRepository:    userRepository,
		resetRepository:   resetRepository,
		passwordGenerator: passwordGenerator,
		passwordHasher:    passwordHasher,
		validDuration:     validDuration,
		now:               now,
	}
}

// Run consumes the pending reset request for the username. The request
// is removed atomically before the supplied token is checked, so one
// approval attempt spends the request whether or not it succeeds, and
// concurrent attempts with a valid token can succeed at most once.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	request, err := s.resetRepository.Pop(ctx, input.Username)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, reset.ErrRequestDoesNotExist) {
		s.log.Info(
			ctx,
			"No pending password reset request for username.",
			logging.Entry("username", input.Username),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not pop password reset request.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	if request.IsExpired(s.now(), s.validDuration) {
		s.log.Info(
			ctx,
			"Password reset request has expired.",
			logging.Entry("username", input.Username),
			logging.Entry("issuedAt", request.IssuedAt),
		)
		return result, reset.ErrInvalidToken
	}
	if subtle.ConstantTimeCompare([]byte(request.Token), []byte(input.Token)) != 1 {
		s.log.Info(
			ctx,
			"Password reset token does not match, pending request consumed.",
			logging.Entry("username", input.Username),
		)
		return result, reset.ErrInvalidToken
	}

	newPassword := s.passwordGenerator.GeneratePassword()
	newPasswordHash, err := s.passwordHasher.HashPassword(newPassword)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not hash new password, reset token is spent.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}
	err = s.userRepository.SetPassword(ctx, input.Username, newPasswordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		// The token is already consumed, the user has to request a new
		// reset.
		s.log.Error(
			ctx,
			"Could not set new password, reset token is spent.",
			logging.Entry("username", input.Username),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password has been reset.",
		logging.Entry("username", input.Username),
	)
	return Result{NewPassword: newPassword}, nil
}
