package user

import (
	"strings"
	"time"

	"meeting-room-approval/internal/pkg/patch"
)

type Profile struct {
	FullName   string
	Whatsapp   string
	Department string
}

type User struct {
	id           int64
	username     Username
	email        Email
	passwordHash string
	profile      Profile
	role         Role
	isActive     bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, email Email, passwordHash string, profile Profile, role Role, now time.Time) (*User, error) {
	p, err := normalizeProfile(profile)
	if err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		profile:      p,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id int64, username Username, email Email, passwordHash string, profile Profile, role Role, isActive bool, lastLogin *time.Time, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		profile:      profile,
		role:         role,
		isActive:     isActive,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func normalizeProfile(p Profile) (Profile, error) {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Department = strings.TrimSpace(p.Department)
	if p.FullName == "" {
		return Profile{}, ErrMissingFullName
	}
	if p.Department == "" {
		return Profile{}, ErrMissingDepartment
	}
	wa, err := NormalizeWhatsapp(p.Whatsapp)
	if err != nil {
		return Profile{}, err
	}
	p.Whatsapp = wa
	return p, nil
}

// Patch carries the fields an administrator may change.
type Patch struct {
	FullName   *string
	Whatsapp   *string
	Department *string
	Email      *Email
	Role       *Role
	IsActive   *bool
}

func (u *User) Apply(p Patch, now time.Time) error {
	profile := Profile{
		FullName:   patch.Coalesce(p.FullName, u.profile.FullName),
		Whatsapp:   patch.Coalesce(p.Whatsapp, u.profile.Whatsapp),
		Department: patch.Coalesce(p.Department, u.profile.Department),
	}
	profile, err := normalizeProfile(profile)
	if err != nil {
		return err
	}
	if p.Role != nil && !p.Role.IsValid() {
		return ErrInvalidRole
	}

	u.profile = profile
	u.email = patch.Coalesce(p.Email, u.email)
	u.role = patch.Coalesce(p.Role, u.role)
	u.isActive = patch.Coalesce(p.IsActive, u.isActive)
	u.updatedAt = now
	return nil
}

func (u *User) ID() int64             { return u.id }
func (u *User) Username() Username    { return u.username }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Profile() Profile      { return u.profile }
func (u *User) Role() Role            { return u.role }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }
