//go:build unit || e2e

package builder

import (
	"time"

	"meeting-room-approval/internal/domain/user"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/usecase/queries"
	"meeting-room-approval/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Whatsapp     string
	Department   string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           1,
		Username:     "budi",
		Email:        "budi@example.com",
		PasswordHash: "hashed_password",
		FullName:     "Budi Santoso",
		Whatsapp:     "081234567890",
		Department:   "Finance",
		Role:         "user",
		IsActive:     true,
		CreatedAt:    time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	profile := user.Profile{FullName: u.FullName, Whatsapp: u.Whatsapp, Department: u.Department}
	return user.NewUser(username, email, u.PasswordHash, profile, role, u.CreatedAt)
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	ts := pgtype.Timestamptz{Time: u.CreatedAt, Valid: true}
	return sqlc.Users{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		Whatsapp:     u.Whatsapp,
		Department:   u.Department,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	return &queries.UserView{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		Whatsapp:   u.Whatsapp,
		Department: u.Department,
		Role:       u.Role,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.CreatedAt,
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		IsActive:     u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
