package readstore

import (
	"context"

	"meeting-room-approval/internal/infra"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/pkg/pgconv"
	"meeting-room-approval/internal/usecase/queries"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error)
	GetUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error)
	ListActiveUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

// FindByUsername also returns the password hash for credential checks.
func (r *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.UserView, string, error) {
	row, err := r.queries.GetUserByUsername(ctx, r.db, username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}
	return toUserView(row), row.PasswordHash, nil
}

func (r *UserReadStore) ListActive(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.queries.ListActiveUsers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	views := make([]*queries.UserView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toUserView(row))
	}
	return views, nil
}

func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:         row.ID,
		Username:   row.Username,
		Email:      row.Email,
		FullName:   row.FullName,
		Whatsapp:   row.Whatsapp,
		Department: row.Department,
		Role:       row.Role,
		IsActive:   row.IsActive,
		LastLogin:  pgconv.TimePtrFromPgtype(row.LastLogin),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
