//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"meeting-room-approval/internal/infra"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/pkg/errs"
	"meeting-room-approval/internal/pkg/pgconv"
	"meeting-room-approval/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserQueries) UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserQueries) UpdateLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateLastLoginParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserQueries) DeactivateUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.DeactivateUsersParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestUpdateLastLogin(t *testing.T) {
	at := time.Date(2025, 5, 25, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{
			name:      "success",
			mockError: nil,
			wantError: false,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserQueries)
			want := sqlc.UpdateLastLoginParams{ID: 7, LastLogin: pgconv.TimeToPgtype(at)}
			mockQueries.On("UpdateLastLogin", mock.Anything, mock.Anything, want).Return(tt.mockError)

			repo := NewUserRepository(mockQueries)

			err := repo.UpdateLastLogin(context.Background(), nil, 7, at)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindUserByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockUserQueries)
		row := builder.NewUserBuilder().WithRole("head_ga").BuildInfra()
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		u, err := NewUserRepository(mockQueries).FindByID(context.Background(), nil, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.ID, u.ID())
		assert.Equal(t, "budi", u.Username().Value())
		assert.Equal(t, "head_ga", u.Role().String())
		mockQueries.AssertExpectations(t)
	})

	t.Run("missing row", func(t *testing.T) {
		mockQueries := new(MockUserQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, int64(9)).Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := NewUserRepository(mockQueries).FindByID(context.Background(), nil, 9)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("stored role outside the known set", func(t *testing.T) {
		mockQueries := new(MockUserQueries)
		row := builder.NewUserBuilder().WithRole("superuser").BuildInfra()
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, row.ID).Return(row, nil)

		_, err := NewUserRepository(mockQueries).FindByID(context.Background(), nil, row.ID)

		assert.Error(t, err)
	})
}

func TestCreateUserDuplicate(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	mockQueries := new(MockUserQueries)
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	mockQueries.On("CreateUser", mock.Anything, mock.Anything, mock.AnythingOfType("sqlc.CreateUserParams")).Return(int64(0), pgErr)

	_, err = NewUserRepository(mockQueries).Create(context.Background(), nil, u)

	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	assert.Equal(t, "users_email_key", infra.ConstraintOf(err))
	assert.True(t, errs.Is(err, errs.ErrConflict))
}

func TestUpdateUserNoRows(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	mockQueries := new(MockUserQueries)
	mockQueries.On("UpdateUser", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

	err = NewUserRepository(mockQueries).Update(context.Background(), nil, u)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	mockQueries.AssertExpectations(t)
}
