//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"meeting-room-approval/internal/domain/registry"
	"meeting-room-approval/internal/infra"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/usecase/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistryCommandsTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	h       *uowHarness
	useCase commands.RegistryCommands
}

func (s *RegistryCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = newUowHarness(s.ctrl)
	s.useCase = commands.NewRegistryUseCase(s.h.uow, s.h.clock)
}

func (s *RegistryCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRegistryCommandsSuite(t *testing.T) {
	suite.Run(t, new(RegistryCommandsTestSuite))
}

func storedRoom(id int64, name string, facilities ...int64) *registry.Room {
	created := fixedNow.Add(-48 * time.Hour)
	entry := registry.ReconstructEntry(id, name, "", true, created, created)
	return registry.ReconstructRoom(entry, 10, "Lantai 2", false, facilities)
}

func (s *RegistryCommandsTestSuite) TestCreateRoom() {
	s.Run("success: trims and dedupes before insert", func() {
		s.h.registry.EXPECT().CreateRoom(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, room *registry.Room) (int64, error) {
				s.Equal("Room A", room.Name())
				s.Equal([]int64{2, 3}, room.FacilityIDs())
				s.Equal(fixedNow, room.CreatedAt())
				return 11, nil
			}).Times(1)

		id, err := s.useCase.CreateRoom(context.Background(), commands.RoomInput{
			Name:        "  Room A ",
			Capacity:    12,
			FacilityIDs: []int64{2, 3, 2, 0},
		})

		s.Require().NoError(err)
		s.Equal(int64(11), id)
	})

	s.Run("error: capacity below one never reaches storage", func() {
		_, err := s.useCase.CreateRoom(context.Background(), commands.RoomInput{Name: "Room B", Capacity: 0})
		s.ErrorIs(err, registry.ErrInvalidCapacity)
	})

	s.Run("error: duplicate name", func() {
		s.h.registry.EXPECT().CreateRoom(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("create room", nil, infra.KindDuplicateKey)).Times(1)

		_, err := s.useCase.CreateRoom(context.Background(), commands.RoomInput{Name: "Room A", Capacity: 4})
		s.ErrorIs(err, registry.ErrRoomNameTaken)
	})

	s.Run("error: unknown facility id", func() {
		s.h.registry.EXPECT().CreateRoom(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("link facilities", nil, infra.KindForeignKeyViolated)).Times(1)

		_, err := s.useCase.CreateRoom(context.Background(), commands.RoomInput{Name: "Room C", Capacity: 4, FacilityIDs: []int64{99}})
		s.ErrorIs(err, registry.ErrFacilityNotFound)
	})
}

func (s *RegistryCommandsTestSuite) TestUpdateRoom() {
	s.Run("success: replaces facilities only when given", func() {
		capacity := 20
		facilities := []int64{}
		s.h.registry.EXPECT().FindRoom(gomock.Any(), gomock.Any(), int64(4)).Return(storedRoom(4, "Room A", 1, 2), nil).Times(1)
		s.h.registry.EXPECT().UpdateRoom(gomock.Any(), gomock.Any(), gomock.Any(), true).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, room *registry.Room, _ bool) error {
				s.Equal(20, room.Capacity())
				s.Empty(room.FacilityIDs())
				s.Equal(fixedNow, room.UpdatedAt())
				return nil
			}).Times(1)

		err := s.useCase.UpdateRoom(context.Background(), 4, commands.RoomPatchInput{Capacity: &capacity, FacilityIDs: &facilities})
		s.NoError(err)
	})

	s.Run("success: untouched facilities are kept", func() {
		location := "Lantai 3"
		s.h.registry.EXPECT().FindRoom(gomock.Any(), gomock.Any(), int64(4)).Return(storedRoom(4, "Room A", 1), nil).Times(1)
		s.h.registry.EXPECT().UpdateRoom(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(nil).Times(1)

		err := s.useCase.UpdateRoom(context.Background(), 4, commands.RoomPatchInput{Location: &location})
		s.NoError(err)
	})

	s.Run("error: unknown room", func() {
		s.h.registry.EXPECT().FindRoom(gomock.Any(), gomock.Any(), int64(40)).
			Return(nil, infra.WrapRepoErr("find room", nil, infra.KindNotFound)).Times(1)

		err := s.useCase.UpdateRoom(context.Background(), 40, commands.RoomPatchInput{})
		s.ErrorIs(err, registry.ErrRoomNotFound)
	})

	s.Run("error: blank name", func() {
		blank := "   "
		s.h.registry.EXPECT().FindRoom(gomock.Any(), gomock.Any(), int64(4)).Return(storedRoom(4, "Room A"), nil).Times(1)

		err := s.useCase.UpdateRoom(context.Background(), 4, commands.RoomPatchInput{Name: &blank})
		s.ErrorIs(err, registry.ErrEmptyName)
	})
}

func (s *RegistryCommandsTestSuite) TestEntries() {
	s.Run("success: creates a department", func() {
		s.h.registry.EXPECT().CreateEntry(gomock.Any(), gomock.Any(), registry.KindDepartment, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ registry.Kind, e registry.Entry) (int64, error) {
				s.Equal("Finance", e.Name())
				s.True(e.IsActive())
				return 3, nil
			}).Times(1)

		id, err := s.useCase.CreateEntry(context.Background(), registry.KindDepartment, commands.EntryInput{Name: "Finance"})
		s.Require().NoError(err)
		s.Equal(int64(3), id)
	})

	s.Run("error: duplicate facility name uses the facility message", func() {
		s.h.registry.EXPECT().CreateEntry(gomock.Any(), gomock.Any(), registry.KindFacility, gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("create facility", nil, infra.KindDuplicateKey)).Times(1)

		_, err := s.useCase.CreateEntry(context.Background(), registry.KindFacility, commands.EntryInput{Name: "Projector"})
		s.ErrorIs(err, registry.ErrFacilityNameTaken)
	})

	s.Run("success: reactivates an entry", func() {
		active := true
		created := fixedNow.Add(-time.Hour)
		s.h.registry.EXPECT().FindEntry(gomock.Any(), gomock.Any(), registry.KindFacility, int64(2)).
			Return(registry.ReconstructEntry(2, "Projector", "", false, created, created), nil).Times(1)
		s.h.registry.EXPECT().UpdateEntry(gomock.Any(), gomock.Any(), registry.KindFacility, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ registry.Kind, e registry.Entry) error {
				s.True(e.IsActive())
				return nil
			}).Times(1)

		err := s.useCase.UpdateEntry(context.Background(), registry.KindFacility, 2, commands.EntryPatchInput{IsActive: &active})
		s.NoError(err)
	})
}

func (s *RegistryCommandsTestSuite) TestDeactivate() {
	s.Run("success: bulk dedupes ids", func() {
		s.h.registry.EXPECT().Deactivate(gomock.Any(), gomock.Any(), registry.KindRoom, []int64{1, 2}, fixedNow).Return(int64(2), nil).Times(1)

		n, err := s.useCase.DeactivateMany(context.Background(), registry.KindRoom, []int64{1, 2, 1, -4})
		s.Require().NoError(err)
		s.Equal(int64(2), n)
	})

	s.Run("error: empty bulk list", func() {
		_, err := s.useCase.DeactivateMany(context.Background(), registry.KindRoom, []int64{0})
		s.ErrorIs(err, registry.ErrEmptyIDs)
	})

	s.Run("error: single id that matches nothing", func() {
		s.h.registry.EXPECT().Deactivate(gomock.Any(), gomock.Any(), registry.KindDepartment, []int64{9}, fixedNow).Return(int64(0), nil).Times(1)

		err := s.useCase.Deactivate(context.Background(), registry.KindDepartment, 9)
		s.ErrorIs(err, registry.ErrDepartmentNotFound)
	})

	s.Run("error: non-positive single id is not found", func() {
		err := s.useCase.Deactivate(context.Background(), registry.KindFacility, 0)
		s.ErrorIs(err, registry.ErrFacilityNotFound)
	})
}
