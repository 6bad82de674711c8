//go:build unit

package commands_test

import (
	"context"
	"testing"

	"meeting-room-approval/internal/domain/meeting"
	"meeting-room-approval/internal/domain/registry"
	"meeting-room-approval/internal/domain/user"
	"meeting-room-approval/internal/infra"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/pkg/errs"
	"meeting-room-approval/internal/usecase/commands"
	"meeting-room-approval/internal/usecase/shared"
	"meeting-room-approval/tests/common/builder"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errStoreNotFound = errs.Kind("row not found", errs.ErrNotFound)

type MeetingRequestCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	h    *uowHarness
	uc   commands.MeetingRequestCommands
}

func (s *MeetingRequestCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = newUowHarness(s.ctrl)
	s.uc = commands.NewMeetingRequestUseCase(s.h.uow, s.h.clock)
}

func (s *MeetingRequestCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMeetingRequestCommandsSuite(t *testing.T) {
	suite.Run(t, new(MeetingRequestCommandsTestSuite))
}

func approvedBooking(id int64, room, date, start, end string) meeting.Booking {
	span, err := meeting.ParseTimeRange(start, end)
	if err != nil {
		panic(err)
	}
	return meeting.Booking{
		RequestID: id,
		Slot:      meeting.Slot{Room: room, Date: meeting.MustCalendarDate(date), Span: span},
		Status:    meeting.StatusApproved,
	}
}

func (s *MeetingRequestCommandsTestSuite) storedRequest(id int64, mutate func(*builder.MeetingRequestBuilder)) *meeting.MeetingRequest {
	b := builder.NewMeetingRequestBuilder()
	if mutate != nil {
		b.With(mutate)
	}
	req, err := b.BuildStored(id)
	s.Require().NoError(err)
	return req
}

func (s *MeetingRequestCommandsTestSuite) TestCreate() {
	requester := &shared.UserSnapshot{ID: 1, Username: "budi", Role: "user", IsActive: true}
	room := &shared.RoomSnapshot{ID: 3, Name: "Room A", Capacity: 10}
	date := meeting.MustCalendarDate("2025-06-01")

	s.Run("success: persists the request and its submission entry", func() {
		in := builder.NewMeetingRequestBuilder().BuildInput()
		var created *meeting.MeetingRequest

		s.h.reads.EXPECT().UserByID(gomock.Any(), int64(1)).Return(requester, nil)
		s.h.reads.EXPECT().ActiveRoomByName(gomock.Any(), "Room A").Return(room, nil)
		s.h.meetings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), "Room A", date).Return(nil)
		s.h.meetings.EXPECT().Bookings(gomock.Any(), gomock.Any(), "Room A", date).
			Return([]meeting.Booking{approvedBooking(7, "Room A", "2025-06-01", "10:00", "11:00")}, nil)
		s.h.meetings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, req *meeting.MeetingRequest) (int64, meeting.RequestCode, error) {
				created = req
				return 12, meeting.NewRequestCode(12), nil
			})
		s.h.history.EXPECT().Append(gomock.Any(), gomock.Any(), int64(12), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ int64, e meeting.HistoryEntry) (int64, error) {
				s.Equal(meeting.ActionSubmitted, e.Action())
				s.Equal(meeting.EntrySubmitted, e.Status())
				s.Equal("Budi Santoso", e.By())
				return 1, nil
			})

		result, err := s.uc.Create(context.Background(), in, commands.Actor{ID: 1, Role: user.RoleUser})

		s.Require().NoError(err)
		s.Equal(int64(12), result.ID)
		s.Equal("MTG-12", result.RequestCode)
		s.Require().NotNil(created)
		s.Equal(meeting.StatusPending, created.Status())
		s.Equal(fixedNow, created.CreatedAt())
	})

	s.Run("success: room name is looked up trimmed", func() {
		in := builder.NewMeetingRequestBuilder().With(func(b *builder.MeetingRequestBuilder) { b.NamaRuangan = "Room A " }).BuildInput()

		s.h.reads.EXPECT().UserByID(gomock.Any(), int64(1)).Return(requester, nil)
		s.h.reads.EXPECT().ActiveRoomByName(gomock.Any(), "Room A").Return(room, nil)
		s.h.meetings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), "Room A", date).Return(nil)
		s.h.meetings.EXPECT().Bookings(gomock.Any(), gomock.Any(), "Room A", date).Return(nil, nil)
		s.h.meetings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(13), meeting.NewRequestCode(13), nil)
		s.h.history.EXPECT().Append(gomock.Any(), gomock.Any(), int64(13), gomock.Any()).Return(int64(1), nil)

		result, err := s.uc.Create(context.Background(), in, commands.Actor{ID: 1, Role: user.RoleUser})

		s.Require().NoError(err)
		s.Equal("MTG-13", result.RequestCode)
	})

	s.Run("error: failed history write aborts the transaction", func() {
		in := builder.NewMeetingRequestBuilder().BuildInput()

		s.h.reads.EXPECT().UserByID(gomock.Any(), int64(1)).Return(requester, nil)
		s.h.reads.EXPECT().ActiveRoomByName(gomock.Any(), "Room A").Return(room, nil)
		s.h.meetings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), "Room A", date).Return(nil)
		s.h.meetings.EXPECT().Bookings(gomock.Any(), gomock.Any(), "Room A", date).Return(nil, nil)
		s.h.meetings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(14), meeting.NewRequestCode(14), nil)
		s.h.history.EXPECT().Append(gomock.Any(), gomock.Any(), int64(14), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("append history", nil, infra.KindDBFailure))

		result, err := s.uc.Create(context.Background(), in, commands.Actor{ID: 1, Role: user.RoleUser})

		s.Nil(result)
		s.True(errs.Is(err, errs.ErrPersistence))
	})

	s.Run("error: overlapping approved booking", func() {
		in := builder.NewMeetingRequestBuilder().BuildInput()

		s.h.reads.EXPECT().UserByID(gomock.Any(), int64(1)).Return(requester, nil)
		s.h.reads.EXPECT().ActiveRoomByName(gomock.Any(), "Room A").Return(room, nil)
		s.h.meetings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), "Room A", date).Return(nil)
		s.h.meetings.EXPECT().Bookings(gomock.Any(), gomock.Any(), "Room A", date).
			Return([]meeting.Booking{approvedBooking(7, "Room A", "2025-06-01", "09:30", "10:30")}, nil)

		_, err := s.uc.Create(context.Background(), in, commands.Actor{ID: 1, Role: user.RoleUser})

		s.ErrorIs(err, meeting.ErrSlotTaken)
		var taken *meeting.SlotTakenError
		s.Require().ErrorAs(err, &taken)
		s.Equal([]string{"09:30-10:30"}, taken.Ranges)
	})

	s.Run("error: unknown room", func() {
		in := builder.NewMeetingRequestBuilder().BuildInput()

		s.h.reads.EXPECT().UserByID(gomock.Any(), int64(1)).Return(requester, nil)
		s.h.reads.EXPECT().ActiveRoomByName(gomock.Any(), "Room A").Return(nil, errStoreNotFound)

		_, err := s.uc.Create(context.Background(), in, commands.Actor{ID: 1, Role: user.RoleUser})
		s.ErrorIs(err, registry.ErrRoomNotFound)
	})

	s.Run("error: inactive requester", func() {
		in := builder.NewMeetingRequestBuilder().BuildInput()
		s.h.reads.EXPECT().UserByID(gomock.Any(), int64(1)).
			Return(&shared.UserSnapshot{ID: 1, Role: "user", IsActive: false}, nil)

		_, err := s.uc.Create(context.Background(), in, commands.Actor{ID: 1, Role: user.RoleUser})
		s.ErrorIs(err, user.ErrUserNotFound)
	})

	s.Run("error: non-admin submitting for another user", func() {
		in := builder.NewMeetingRequestBuilder().With(func(b *builder.MeetingRequestBuilder) { b.UserID = 2 }).BuildInput()

		_, err := s.uc.Create(context.Background(), in, commands.Actor{ID: 1, Role: user.RoleHeadGA})
		s.ErrorIs(err, commands.ErrSubmitForOther)
	})

	s.Run("error: end not after start never opens a transaction", func() {
		s.h.withinCalls = 0
		in := builder.NewMeetingRequestBuilder().With(func(b *builder.MeetingRequestBuilder) {
			b.JamMulai = "10:00"
			b.JamBerakhir = "10:00"
		}).BuildInput()

		_, err := s.uc.Create(context.Background(), in, commands.Actor{ID: 1, Role: user.RoleUser})
		s.ErrorIs(err, meeting.ErrEndNotAfterStart)
		s.Zero(s.h.withinCalls)
	})
}

func (s *MeetingRequestCommandsTestSuite) TestApplyApproval() {
	date := meeting.MustCalendarDate("2025-06-01")

	s.Run("success: Head GA approval moves to awaiting OS without a slot check", func() {
		req := s.storedRequest(5, nil)
		s.h.meetings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(5)).Return(req, nil)
		s.h.meetings.EXPECT().UpdateApproval(gomock.Any(), gomock.Any(), req).Return(nil)
		s.h.history.EXPECT().Append(gomock.Any(), gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ int64, e meeting.HistoryEntry) (int64, error) {
				s.Equal("Approved by Head GA", e.Action())
				s.Equal("Head GA", e.By())
				s.Equal("looks fine", e.Notes())
				return 2, nil
			})

		err := s.uc.ApplyApproval(context.Background(), 5,
			commands.ApprovalInput{Type: "approveGA", Notes: "  looks fine "},
			commands.Actor{ID: 2, Role: user.RoleHeadGA})

		s.Require().NoError(err)
		ga, os := req.ApprovalFields()
		s.Equal(meeting.DecisionApproved, ga)
		s.Equal(meeting.DecisionPending, os)
	})

	s.Run("success: final approval checks the slot excluding itself", func() {
		req := s.storedRequest(5, func(b *builder.MeetingRequestBuilder) { b.HeadGA = meeting.DecisionApproved })
		s.h.meetings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(5)).Return(req, nil)
		s.h.meetings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), "Room A", date).Return(nil)
		s.h.meetings.EXPECT().Bookings(gomock.Any(), gomock.Any(), "Room A", date).
			Return([]meeting.Booking{approvedBooking(5, "Room A", "2025-06-01", "09:00", "10:00")}, nil)
		s.h.meetings.EXPECT().UpdateApproval(gomock.Any(), gomock.Any(), req).Return(nil)
		s.h.history.EXPECT().Append(gomock.Any(), gomock.Any(), int64(5), gomock.Any()).Return(int64(2), nil)

		err := s.uc.ApplyApproval(context.Background(), 5, commands.ApprovalInput{Type: "approveOS"},
			commands.Actor{ID: 3, Role: user.RoleHeadOS})

		s.Require().NoError(err)
		s.Equal(meeting.StatusApproved, req.Status())
	})

	s.Run("error: final approval loses to an approved overlap", func() {
		req := s.storedRequest(5, func(b *builder.MeetingRequestBuilder) { b.HeadGA = meeting.DecisionApproved })
		s.h.meetings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(5)).Return(req, nil)
		s.h.meetings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), "Room A", date).Return(nil)
		s.h.meetings.EXPECT().Bookings(gomock.Any(), gomock.Any(), "Room A", date).
			Return([]meeting.Booking{approvedBooking(8, "Room A", "2025-06-01", "09:45", "11:00")}, nil)

		err := s.uc.ApplyApproval(context.Background(), 5, commands.ApprovalInput{Type: "approveOS"},
			commands.Actor{ID: 1, Role: user.RoleAdmin})

		s.ErrorIs(err, meeting.ErrSlotTaken)
	})

	s.Run("error: failed history write aborts the transaction", func() {
		req := s.storedRequest(5, nil)
		s.h.meetings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(5)).Return(req, nil)
		s.h.meetings.EXPECT().UpdateApproval(gomock.Any(), gomock.Any(), req).Return(nil)
		s.h.history.EXPECT().Append(gomock.Any(), gomock.Any(), int64(5), gomock.Any()).
			Return(int64(0), infra.WrapRepoErr("append history", nil, infra.KindDBFailure))

		err := s.uc.ApplyApproval(context.Background(), 5, commands.ApprovalInput{Type: "rejectGA"},
			commands.Actor{ID: 2, Role: user.RoleHeadGA})

		s.True(errs.Is(err, errs.ErrPersistence))
		s.False(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("error: Head OS cannot act first", func() {
		req := s.storedRequest(5, nil)
		s.h.meetings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(5)).Return(req, nil)

		err := s.uc.ApplyApproval(context.Background(), 5, commands.ApprovalInput{Type: "rejectOS"},
			commands.Actor{ID: 3, Role: user.RoleHeadOS})

		s.ErrorIs(err, meeting.ErrOSBeforeGA)
		s.Equal(meeting.StatusPending, req.Status())
	})

	s.Run("error: role may not take the action", func() {
		s.h.withinCalls = 0
		err := s.uc.ApplyApproval(context.Background(), 5, commands.ApprovalInput{Type: "approveGA"},
			commands.Actor{ID: 3, Role: user.RoleHeadOS})

		s.ErrorIs(err, meeting.ErrActionNotPermitted)
		s.Zero(s.h.withinCalls)
	})

	s.Run("error: unknown action", func() {
		err := s.uc.ApplyApproval(context.Background(), 5, commands.ApprovalInput{Type: "approve"},
			commands.Actor{ID: 1, Role: user.RoleAdmin})
		s.ErrorIs(err, meeting.ErrInvalidAction)
	})

	s.Run("error: missing request", func() {
		s.h.meetings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(99)).Return(nil, errStoreNotFound)

		err := s.uc.ApplyApproval(context.Background(), 99, commands.ApprovalInput{Type: "approveGA"},
			commands.Actor{ID: 1, Role: user.RoleAdmin})
		s.ErrorIs(err, meeting.ErrRequestNotFound)
	})
}

func (s *MeetingRequestCommandsTestSuite) TestUpdate() {
	date := meeting.MustCalendarDate("2025-06-01")

	s.Run("success: rescheduling rechecks the slot and records an edit", func() {
		req := s.storedRequest(5, nil)
		start := "10:00"
		end := "11:30"

		s.h.meetings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(5)).Return(req, nil)
		s.h.meetings.EXPECT().LockSlot(gomock.Any(), gomock.Any(), "Room A", date).Return(nil)
		s.h.meetings.EXPECT().Bookings(gomock.Any(), gomock.Any(), "Room A", date).Return(nil, nil)
		s.h.meetings.EXPECT().UpdateDetails(gomock.Any(), gomock.Any(), req).Return(nil)
		s.h.history.EXPECT().Append(gomock.Any(), gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, _ int64, e meeting.HistoryEntry) (int64, error) {
				s.Equal(meeting.ActionUpdated, e.Action())
				s.Equal(meeting.NoteUpdated, e.Notes())
				return 2, nil
			})

		err := s.uc.Update(context.Background(), 5, commands.UpdateMeetingRequestInput{JamMulai: &start, JamBerakhir: &end})

		s.Require().NoError(err)
		s.Equal("10:00-11:30", req.Details().Span.String())
		s.Equal(meeting.StatusPending, req.Status())
	})

	s.Run("success: agenda-only edit skips the slot check", func() {
		req := s.storedRequest(5, nil)
		agenda := "Revised agenda"

		s.h.meetings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(5)).Return(req, nil)
		s.h.meetings.EXPECT().UpdateDetails(gomock.Any(), gomock.Any(), req).Return(nil)
		s.h.history.EXPECT().Append(gomock.Any(), gomock.Any(), int64(5), gomock.Any()).Return(int64(2), nil)

		s.Require().NoError(s.uc.Update(context.Background(), 5, commands.UpdateMeetingRequestInput{Agenda: &agenda}))
		s.Equal(agenda, req.Details().Agenda)
	})

	s.Run("error: moving to an unknown room", func() {
		req := s.storedRequest(5, nil)
		room := "Room Z"

		s.h.meetings.EXPECT().FindForUpdate(gomock.Any(), gomock.Any(), int64(5)).Return(req, nil)
		s.h.reads.EXPECT().ActiveRoomByName(gomock.Any(), "Room Z").Return(nil, errStoreNotFound)

		err := s.uc.Update(context.Background(), 5, commands.UpdateMeetingRequestInput{NamaRuangan: &room})
		s.ErrorIs(err, registry.ErrRoomNotFound)
	})

	s.Run("error: malformed time is rejected before loading", func() {
		bad := "25:00"
		err := s.uc.Update(context.Background(), 5, commands.UpdateMeetingRequestInput{JamMulai: &bad})
		s.ErrorIs(err, meeting.ErrInvalidTime)
	})
}

func (s *MeetingRequestCommandsTestSuite) TestDelete() {
	s.Run("success", func() {
		s.h.meetings.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(4)).Return(nil)
		s.NoError(s.uc.Delete(context.Background(), 4))
	})

	s.Run("error: missing request", func() {
		s.h.meetings.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(4)).Return(errStoreNotFound)
		s.ErrorIs(s.uc.Delete(context.Background(), 4), meeting.ErrRequestNotFound)
	})
}
