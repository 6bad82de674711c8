package auth

import (
	"meeting-room-approval/internal/domain/user"
	"meeting-room-approval/internal/pkg/errs"
)

var ErrInvalidCredentials = errs.Kind("invalid username or password", errs.ErrUnauthorized)

type Credentials struct {
	username user.Username
	password user.Password
}

// NewCredentials reports every format problem as ErrInvalidCredentials so a
// login response never reveals which part was wrong.
func NewCredentials(usernameStr, passwordStr string) (Credentials, error) {
	username, err := user.NewUsername(usernameStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		username: username,
		password: password,
	}, nil
}

func (c Credentials) Username() user.Username {
	return c.username
}

func (c Credentials) Password() user.Password {
	return c.password
}
