//go:build unit

package queries_test

import (
	"context"
	"testing"

	"meeting-room-approval/internal/domain/registry"
	"meeting-room-approval/internal/pkg/errs"
	"meeting-room-approval/internal/usecase/queries"
	queriesmock "meeting-room-approval/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistryQueriesGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockRegistryReadStore(ctrl)
	q := queries.NewRegistryQueries(readStore)
	missing := errs.Kind("no rows", errs.ErrNotFound)

	t.Run("room not found", func(t *testing.T) {
		readStore.EXPECT().FindRoomByID(gomock.Any(), int64(3)).Return(nil, missing).Times(1)

		_, err := q.GetRoom(context.Background(), 3)
		assert.ErrorIs(t, err, registry.ErrRoomNotFound)
	})

	t.Run("entry not found is named after its kind", func(t *testing.T) {
		readStore.EXPECT().FindEntryByID(gomock.Any(), registry.KindFacility, int64(4)).Return(nil, missing).Times(1)
		readStore.EXPECT().FindEntryByID(gomock.Any(), registry.KindDepartment, int64(4)).Return(nil, missing).Times(1)

		_, err := q.GetEntry(context.Background(), registry.KindFacility, 4)
		assert.ErrorIs(t, err, registry.ErrFacilityNotFound)
		_, err = q.GetEntry(context.Background(), registry.KindDepartment, 4)
		assert.ErrorIs(t, err, registry.ErrDepartmentNotFound)
	})

	t.Run("found entry is returned as is", func(t *testing.T) {
		view := &queries.EntryView{ID: 5, Name: "Finance", IsActive: true}
		readStore.EXPECT().FindEntryByID(gomock.Any(), registry.KindDepartment, int64(5)).Return(view, nil).Times(1)

		got, err := q.GetEntry(context.Background(), registry.KindDepartment, 5)
		require.NoError(t, err)
		assert.Same(t, view, got)
	})
}

func TestRegistryQueriesOptions(t *testing.T) {
	rooms := []*queries.RoomView{{ID: 1, Name: "Room A", Capacity: 10, IsActive: true, Facilities: []queries.FacilityRef{{ID: 2, Name: "Projector"}}}}
	facilities := []*queries.EntryView{{ID: 2, Name: "Projector", IsActive: true}}
	departments := []*queries.EntryView{{ID: 3, Name: "Finance", IsActive: true}}

	t.Run("gathers every list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockRegistryReadStore(ctrl)
		readStore.EXPECT().ListActiveRooms(gomock.Any()).Return(rooms, nil).Times(1)
		readStore.EXPECT().ListActiveEntries(gomock.Any(), registry.KindFacility).Return(facilities, nil).Times(1)
		readStore.EXPECT().ListActiveEntries(gomock.Any(), registry.KindDepartment).Return(departments, nil).Times(1)

		got, err := queries.NewRegistryQueries(readStore).Options(context.Background())

		require.NoError(t, err)
		want := &queries.OptionsView{Rooms: rooms, Facilities: facilities, Departments: departments}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("options mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("one failing list fails the whole call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockRegistryReadStore(ctrl)
		boom := errs.New("connection reset")
		readStore.EXPECT().ListActiveRooms(gomock.Any()).Return(nil, boom).Times(1)
		readStore.EXPECT().ListActiveEntries(gomock.Any(), gomock.Any()).Return(facilities, nil).AnyTimes()

		got, err := queries.NewRegistryQueries(readStore).Options(context.Background())

		assert.ErrorIs(t, err, boom)
		assert.Nil(t, got)
	})
}
