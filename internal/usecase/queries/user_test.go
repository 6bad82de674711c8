//go:build unit

package queries_test

import (
	"context"
	"testing"

	"meeting-room-approval/internal/domain/user"
	"meeting-room-approval/internal/pkg/errs"
	"meeting-room-approval/internal/usecase/queries"
	"meeting-room-approval/tests/common/builder"
	queriesmock "meeting-room-approval/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetCurrentUser(t *testing.T) {
	tests := []struct {
		name    string
		stored  *queries.UserView
		findErr error
		wantErr error
	}{
		{name: "active user", stored: builder.NewUserBuilder().BuildReadModel()},
		{name: "inactive user", stored: builder.NewUserBuilder().AsInactive().BuildReadModel(), wantErr: user.ErrUserInactive},
		{name: "deleted row", findErr: errs.Kind("no rows", errs.ErrNotFound), wantErr: user.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			readStore := queriesmock.NewMockUserReadStore(ctrl)
			readStore.EXPECT().FindByID(gomock.Any(), int64(1)).Return(tt.stored, tt.findErr).Times(1)

			got, err := queries.NewUserQueries(readStore).GetCurrentUser(context.Background(), 1)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "budi", got.Username)
		})
	}
}

func TestListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockUserReadStore(ctrl)
	views := []*queries.UserView{builder.NewUserBuilder().BuildReadModel()}
	readStore.EXPECT().ListActive(gomock.Any()).Return(views, nil).Times(1)

	got, err := queries.NewUserQueries(readStore).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, views, got)
}
