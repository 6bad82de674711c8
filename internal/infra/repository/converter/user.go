package converter

import (
	"meeting-room-approval/internal/domain/user"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/pkg/errs"
	"meeting-room-approval/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	p := u.Profile()
	return sqlc.CreateUserParams{
		Username:     u.Username().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		FullName:     p.FullName,
		Whatsapp:     p.Whatsapp,
		Department:   p.Department,
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserToUpdateParams(u *user.User) sqlc.UpdateUserParams {
	p := u.Profile()
	return sqlc.UpdateUserParams{
		ID:         u.ID(),
		Email:      u.Email().Value(),
		FullName:   p.FullName,
		Whatsapp:   p.Whatsapp,
		Department: p.Department,
		Role:       u.Role().String(),
		IsActive:   u.IsActive(),
		UpdatedAt:  pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserFromRow(row sqlc.Users) (*user.User, error) {
	username, err := user.NewUsername(row.Username)
	if err != nil {
		return nil, errs.Wrapf(ErrMalformedRow, "user %d username", row.ID)
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrapf(ErrMalformedRow, "user %d email", row.ID)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrapf(ErrMalformedRow, "user %d role %q", row.ID, row.Role)
	}
	profile := user.Profile{
		FullName:   row.FullName,
		Whatsapp:   row.Whatsapp,
		Department: row.Department,
	}
	return user.ReconstructUser(
		row.ID,
		username,
		email,
		row.PasswordHash,
		profile,
		role,
		row.IsActive,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
