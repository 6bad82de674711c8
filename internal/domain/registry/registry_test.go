//go:build unit

package registry_test

import (
	"strings"
	"testing"
	"time"

	"meeting-room-approval/internal/domain/registry"
	"meeting-room-approval/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r, err := registry.NewRoom(registry.RoomSpec{
			Name:        "  Room A ",
			Capacity:    10,
			Location:    "Floor 2",
			IsHybrid:    true,
			FacilityIDs: []int64{3, 1, 3, 0},
		}, now)
		require.NoError(t, err)

		assert.Equal(t, "Room A", r.Name())
		assert.True(t, r.IsActive())
		assert.True(t, r.IsHybrid())
		assert.Equal(t, []int64{3, 1}, r.FacilityIDs())
	})

	cases := []struct {
		name  string
		room  registry.RoomSpec
		errIs error
	}{
		{name: "empty name", room: registry.RoomSpec{Name: " ", Capacity: 1}, errIs: registry.ErrEmptyName},
		{name: "long name", room: registry.RoomSpec{Name: strings.Repeat("x", 101), Capacity: 1}, errIs: registry.ErrNameTooLong},
		{name: "zero capacity", room: registry.RoomSpec{Name: "A", Capacity: 0}, errIs: registry.ErrInvalidCapacity},
		{name: "minimum capacity", room: registry.RoomSpec{Name: "A", Capacity: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := registry.NewRoom(c.room, now)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestRoomApply(t *testing.T) {
	r, err := registry.NewRoom(registry.RoomSpec{Name: "Room A", Capacity: 10}, now)
	require.NoError(t, err)

	zero := 0
	err = r.Apply(registry.RoomPatch{Capacity: &zero}, now)
	require.ErrorIs(t, err, registry.ErrInvalidCapacity)
	assert.Equal(t, 10, r.Capacity())

	blank := ""
	capacity := 12
	err = r.Apply(registry.RoomPatch{EntryPatch: registry.EntryPatch{Name: &blank}, Capacity: &capacity}, now)
	require.ErrorIs(t, err, registry.ErrEmptyName)
	assert.Equal(t, 10, r.Capacity())

	name := "Room B"
	inactive := false
	ids := []int64{2}
	later := now.Add(time.Hour)
	require.NoError(t, r.Apply(registry.RoomPatch{
		EntryPatch:  registry.EntryPatch{Name: &name, IsActive: &inactive},
		Capacity:    &capacity,
		FacilityIDs: &ids,
	}, later))
	assert.Equal(t, "Room B", r.Name())
	assert.False(t, r.IsActive())
	assert.Equal(t, 12, r.Capacity())
	assert.Equal(t, []int64{2}, r.FacilityIDs())
	assert.Equal(t, later, r.UpdatedAt())
}

func TestDedupeIDs(t *testing.T) {
	ids, err := registry.DedupeIDs([]int64{5, 5, -1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 2}, ids)

	_, err = registry.DedupeIDs([]int64{0})
	assert.ErrorIs(t, err, registry.ErrEmptyIDs)
}

func TestKindErrors(t *testing.T) {
	assert.ErrorIs(t, registry.KindRoom.ErrNotFound(), registry.ErrRoomNotFound)
	assert.ErrorIs(t, registry.KindFacility.ErrNotFound(), registry.ErrFacilityNotFound)
	assert.ErrorIs(t, registry.KindDepartment.ErrNotFound(), errs.ErrNotFound)
	assert.ErrorIs(t, registry.KindFacility.ErrNameTaken(), registry.ErrFacilityNameTaken)
	assert.ErrorIs(t, registry.KindDepartment.ErrNameTaken(), errs.ErrConflict)
}

func TestKindPlural(t *testing.T) {
	assert.Equal(t, "rooms", registry.KindRoom.Plural())
	assert.Equal(t, "facilities", registry.KindFacility.Plural())
	assert.Equal(t, "departments", registry.KindDepartment.Plural())
}
