package user

import (
	"context"
	"errors"
	"testing"
	"time"

	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	"github.com/miradam/aaa-onboarding-portal/internal/core/domain/user"
	"github.com/miradam/aaa-onboarding-portal/internal/db"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	USERNAME      = c.Username("alice")
	EMAIL         = c.Email("alice@example.com")
	PASSWORD_HASH = user.PasswordHash("test-password-hash")
)

var NOW time.Time = time.Date(2023, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createInput() user.CreateUserInput {
	return user.CreateUserInput{
		Username:     USERNAME,
		Email:        EMAIL,
		FirstName:    "Alice",
		LastName:     "Doe",
		PasswordHash: PASSWORD_HASH,
		Attributes:   user.Attributes{"phone": "+1-555-0100"},
		CreatedAt:    NOW,
	}
}

func (suite *testSuite) TestCreateSuccess() {
	u, err := suite.repo.Create(context.Background(), suite.createInput())

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), u.ID)
	assert.Equal(USERNAME, u.Username)
	assert.Equal(EMAIL, u.Email)
	assert.Equal(PASSWORD_HASH, u.PasswordHash)
	assert.True(NOW.Equal(u.CreatedAt))
}

func (suite *testSuite) TestUsernameAlreadyExistsError() {
	_, err := suite.repo.Create(context.Background(), suite.createInput())
	suite.Require().Nil(err)

	input := suite.createInput()
	input.Email = c.Email("other@example.com")
	_, err = suite.repo.Create(context.Background(), input)

	suite.Require().True(errors.Is(err, user.ErrUsernameAlreadyExists))
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	_, err := suite.repo.Create(context.Background(), suite.createInput())
	suite.Require().Nil(err)

	input := suite.createInput()
	input.Username = c.Username("bob")
	_, err = suite.repo.Create(context.Background(), input)

	suite.Require().True(errors.Is(err, user.ErrEmailAlreadyExists))
}

func (suite *testSuite) TestGetByUsername() {
	created, err := suite.repo.Create(context.Background(), suite.createInput())
	suite.Require().Nil(err)

	u, err := suite.repo.GetByUsername(context.Background(), USERNAME)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(created.ID, u.ID)
	assert.Equal(USERNAME, u.Username)
	assert.Equal("Alice", u.FirstName)
	assert.Equal(user.Attributes{"phone": "+1-555-0100"}, u.Attributes)
}

func (suite *testSuite) TestGetByUsernameNotFound() {
	_, err := suite.repo.GetByUsername(context.Background(), c.Username("nobody"))
	suite.Require().True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (suite *testSuite) TestExists() {
	assert := suite.Require()

	exists, err := suite.repo.Exists(context.Background(), USERNAME)
	assert.Nil(err)
	assert.False(exists)

	_, err = suite.repo.Create(context.Background(), suite.createInput())
	assert.Nil(err)

	exists, err = suite.repo.Exists(context.Background(), USERNAME)
	assert.Nil(err)
	assert.True(exists)
}

func (suite *testSuite) TestSetPassword() {
	_, err := suite.repo.Create(context.Background(), suite.createInput())
	suite.Require().Nil(err)

	err = suite.repo.SetPassword(context.Background(), USERNAME, user.PasswordHash("new-hash"))

	assert := suite.Require()
	assert.Nil(err)
	u, err := suite.repo.GetByUsername(context.Background(), USERNAME)
	assert.Nil(err)
	assert.Equal(user.PasswordHash("new-hash"), u.PasswordHash)
}

func (suite *testSuite) TestSetPasswordUserDoesNotExist() {
	err := suite.repo.SetPassword(context.Background(), c.Username("nobody"), user.PasswordHash("new-hash"))
	suite.Require().True(errors.Is(err, user.ErrUserDoesNotExist))
}
