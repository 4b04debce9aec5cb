package registeruser

import (
	"context"
	"errors"
	"testing"
	"time"

	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/logging"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"
	"github.com/miradam/aaa-onboarding-portal/internal/core/services"

	"github.com/stretchr/testify/suite"
)

const (
	USERNAME     = c.Username("alice")
	EMAIL        = c.Email("alice@example.com")
	RAW_PASSWORD = user.RawPassword("test-password")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UserRepository *user.FakeUserRepository
	PasswordHasher *user.FakePasswordHasher
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.PasswordHasher,
		func() time.Time { return NOW },
	)
}

func TestRegisterUserService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{
		Username:  USERNAME,
		Email:     EMAIL,
		FirstName: "Alice",
		LastName:  "Doe",
		Password:  RAW_PASSWORD,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), result.User.ID)
	assert.Equal(USERNAME, result.User.Username)
	assert.Equal(EMAIL, result.User.Email)
	assert.Equal(NOW, result.User.CreatedAt)
	assert.NotEqual(user.PasswordHash(RAW_PASSWORD), result.User.PasswordHash)
}

func (suite *testSuite) TestUsernameAlreadyExists() {
	suite.UserRepository.Create(context.Background(), user.CreateUserInput{
		Username:     USERNAME,
		Email:        c.Email("other@example.com"),
		PasswordHash: user.PasswordHash("test"),
		CreatedAt:    NOW,
	})

	_, err := suite.Service.Run(context.Background(), Input{
		Username: USERNAME,
		Email:    EMAIL,
		Password: RAW_PASSWORD,
	})

	suite.Require().True(errors.Is(err, user.ErrUsernameAlreadyExists))
}

type fakeAdminNotifier struct {
	Sent        []user.User
	ReturnError bool
}

func (n *fakeAdminNotifier) SendSignUpNotice(ctx context.Context, u user.User) error {
	if n.ReturnError {
		return errors.New("could not send sign-up notice")
	}
	n.Sent = append(n.Sent, u)
	return nil
}

func (suite *testSuite) TestAdminNotification() {
	notifier := &fakeAdminNotifier{}
	service := NewWithAdminNotification(suite.Logger, notifier, suite.Service)

	_, err := service.Run(context.Background(), Input{
		Username: USERNAME,
		Email:    EMAIL,
		Password: RAW_PASSWORD,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(notifier.Sent, 1)
	assert.Equal(USERNAME, notifier.Sent[0].Username)
}

func (suite *testSuite) TestAdminNotificationErrorDoesNotFailRegistration() {
	notifier := &fakeAdminNotifier{ReturnError: true}
	service := NewWithAdminNotification(suite.Logger, notifier, suite.Service)

	result, err := service.Run(context.Background(), Input{
		Username: USERNAME,
		Email:    EMAIL,
		Password: RAW_PASSWORD,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(USERNAME, result.User.Username)
}

func (suite *testSuite) TestNoNotificationWhenRegistrationFails() {
	suite.UserRepository.ReturnError = true
	notifier := &fakeAdminNotifier{}
	service := NewWithAdminNotification(suite.Logger, notifier, suite.Service)

	_, err := service.Run(context.Background(), Input{
		Username: USERNAME,
		Email:    EMAIL,
		Password: RAW_PASSWORD,
	})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Empty(notifier.Sent)
}
