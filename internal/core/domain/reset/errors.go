package reset

import "errors"

var (
	ErrRequestDoesNotExist = errors.New("password reset request does not exist")
	ErrInvalidToken        = errors.New("invalid password reset token")
)
