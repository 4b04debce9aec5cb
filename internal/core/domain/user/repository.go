package user

import (
	"context"
	c "github.com/miradam/aaa-onboarding-portal/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Username     c.Username
	Email        c.Email
	FirstName    string
	LastName     string
	PasswordHash PasswordHash
	Attributes   Attributes
	CreatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByUsername(ctx context.Context, username c.Username) (User, error)
	Exists(ctx context.Context, username c.Username) (bool, error)
	SetPassword(ctx context.Context, username c.Username, password PasswordHash) error
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}
