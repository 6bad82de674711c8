package repository

import (
	"context"
	"time"

	"meeting-room-approval/internal/domain/user"
	"meeting-room-approval/internal/infra"
	"meeting-room-approval/internal/infra/repository/converter"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/pkg/pgconv"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (int64, error)
	GetUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error)
	UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) (int64, error)
	UpdateLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLastLoginParams) error
	DeactivateUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.DeactivateUsersParams) (int64, error)
}

type UserRepository struct {
	queries UserQueries
}

func NewUserRepository(queries UserQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (int64, error) {
	id, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return converter.UserFromRow(row)
}

func (r *UserRepository) Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	n, err := r.queries.UpdateUser(ctx, tx, converter.UserToUpdateParams(u))
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID int64, at time.Time) error {
	err := r.queries.UpdateLastLogin(ctx, tx, sqlc.UpdateLastLoginParams{
		ID:        userID,
		LastLogin: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *UserRepository) Deactivate(ctx context.Context, tx sqlc.DBTX, ids []int64, at time.Time) (int64, error) {
	n, err := r.queries.DeactivateUsers(ctx, tx, sqlc.DeactivateUsersParams{
		UpdatedAt: pgconv.TimeToPgtype(at),
		Ids:       ids,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to deactivate users", err)
	}
	return n, nil
}
