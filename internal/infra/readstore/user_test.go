//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"meeting-room-approval/internal/infra"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) GetUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error) {
	args := m.Called(ctx, db, username)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) ListActiveUsers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Users, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Users), args.Error(1)
}

func TestFindByUsername(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildInfra()

	tests := []struct {
		name       string
		username   string
		mockReturn sqlc.Users
		mockError  error
		wantHash   string
		wantError  bool
	}{
		{
			name:       "success - active user",
			username:   testUser.Username,
			mockReturn: testUser,
			wantHash:   testUser.PasswordHash,
		},
		{
			name:       "success - inactive user (for validation)",
			username:   inactiveUser.Username,
			mockReturn: inactiveUser,
			wantHash:   inactiveUser.PasswordHash,
		},
		{
			name:       "user not found",
			username:   "ghost",
			mockReturn: sqlc.Users{},
			mockError:  sql.ErrNoRows,
			wantError:  true,
		},
		{
			name:       "database error",
			username:   testUser.Username,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByUsername", mock.Anything, mock.Anything, tt.username).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, hash, err := readStore.FindByUsername(context.Background(), tt.username)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.Empty(t, hash)

				if tt.mockError == sql.ErrNoRows {
					assert.True(t, infra.IsKind(err, infra.KindNotFound))
				} else {
					assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, view.Username)
				assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
				assert.Equal(t, tt.wantHash, hash)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()

	tests := []struct {
		name       string
		userID     int64
		mockReturn sqlc.Users
		mockError  error
		wantError  bool
	}{
		{
			name:       "success",
			userID:     testUser.ID,
			mockReturn: testUser,
		},
		{
			name:       "user not found",
			userID:     404,
			mockReturn: sqlc.Users{},
			mockError:  sql.ErrNoRows,
			wantError:  true,
		},
		{
			name:       "database error",
			userID:     testUser.ID,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				if tt.mockError == sql.ErrNoRows {
					assert.True(t, infra.IsKind(err, infra.KindNotFound))
				} else {
					assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, view.ID)
				assert.Equal(t, "Budi Santoso", view.FullName)
				assert.Nil(t, view.LastLogin)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestListActive(t *testing.T) {
	mockQueries := new(MockUserReadQueries)
	rows := []sqlc.Users{
		builder.NewUserBuilder().BuildInfra(),
		builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.ID = 2; b.Username = "siti" }).BuildInfra(),
	}
	mockQueries.On("ListActiveUsers", mock.Anything, mock.Anything).Return(rows, nil)

	views, err := NewUserReadStore(mockQueries, nil).ListActive(context.Background())

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "siti", views[1].Username)
}
