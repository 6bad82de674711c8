package user

import (
	"regexp"
	"strings"

	"meeting-room-approval/internal/pkg/errs"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
)

var (
	ErrInvalidEmail      = errs.Kind("invalid email format", errs.ErrValidation)
	ErrInvalidRole       = errs.Kind("invalid role", errs.ErrValidation)
	ErrInvalidUsername   = errs.Kind("username must be 3-50 characters of letters, digits, dot, dash or underscore", errs.ErrValidation)
	ErrPasswordTooWeak   = errs.Kind("password must be at least 6 characters long", errs.ErrValidation)
	ErrMissingFullName   = errs.Kind("full name is required", errs.ErrValidation)
	ErrMissingWhatsapp   = errs.Kind("whatsapp number is required", errs.ErrValidation)
	ErrInvalidWhatsapp   = errs.Kind("whatsapp number may only contain digits, spaces, dashes and a leading plus", errs.ErrValidation)
	ErrMissingDepartment = errs.Kind("department is required", errs.ErrValidation)

	ErrUserNotFound  = errs.Kind("user not found", errs.ErrNotFound)
	ErrUserInactive  = errs.Kind("user account is inactive", errs.ErrForbidden)
	ErrUsernameTaken = errs.Kind("username already exists", errs.ErrConflict)
	ErrEmailTaken    = errs.Kind("email already exists", errs.ErrConflict)
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]+$`)
	whatsappRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,19}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if len(s) < MinUsernameLength || len(s) > MaxUsernameLength || !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// NormalizeWhatsapp validates a contact handle and strips surrounding space.
func NormalizeWhatsapp(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrMissingWhatsapp
	}
	if !whatsappRegex.MatchString(s) {
		return "", ErrInvalidWhatsapp
	}
	return s, nil
}
