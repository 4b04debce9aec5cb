package user

import (
	"fmt"
	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	e "github.com/miradam/aaa-onboarding-portal/internal/core/domain/errors"
	"time"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

// Attributes holds optional directory attributes submitted at
// registration time (phone, organization and the like).
type Attributes map[string]string

type User struct {
	ID           ID
	Username     c.Username
	Email        c.Email
	FirstName    string
	LastName     string
	PasswordHash PasswordHash
	Attributes   Attributes
	CreatedAt    time.Time
}

func (u *User) Validate() error {
	if u.Username == "" {
		return e.NewInvalidStateError(fmt.Sprintf("username is not set for user %d", u.ID))
	}
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if u.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	return nil
}

func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
