//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"meeting-room-approval/internal/domain/meeting"
	"meeting-room-approval/internal/infra"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMeetingRequestViewQueries struct {
	mock.Mock
}

func (m *MockMeetingRequestViewQueries) GetMeetingRequestByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.MeetingRequests, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.MeetingRequests), args.Error(1)
}

func (m *MockMeetingRequestViewQueries) ListMeetingRequests(ctx context.Context, db sqlc.DBTX, status pgtype.Text) ([]sqlc.MeetingRequests, error) {
	args := m.Called(ctx, db, status)
	return args.Get(0).([]sqlc.MeetingRequests), args.Error(1)
}

func (m *MockMeetingRequestViewQueries) ListHistoryByRequest(ctx context.Context, db sqlc.DBTX, meetingRequestID int64) ([]sqlc.MeetingRequestHistory, error) {
	args := m.Called(ctx, db, meetingRequestID)
	return args.Get(0).([]sqlc.MeetingRequestHistory), args.Error(1)
}

func (m *MockMeetingRequestViewQueries) ListHistoryByRequests(ctx context.Context, db sqlc.DBTX, requestIds []int64) ([]sqlc.MeetingRequestHistory, error) {
	args := m.Called(ctx, db, requestIds)
	return args.Get(0).([]sqlc.MeetingRequestHistory), args.Error(1)
}

func (m *MockMeetingRequestViewQueries) ListBookingsForRoomDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsForRoomDateParams) ([]sqlc.ListBookingsForRoomDateRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListBookingsForRoomDateRow), args.Error(1)
}

var submittedAt = time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

func meetingRow(id int64, headGA, headOS string) sqlc.MeetingRequests {
	return sqlc.MeetingRequests{
		ID:            id,
		RequestCode:   meeting.NewRequestCode(id).String(),
		UserID:        1,
		Nama:          "Budi Santoso",
		Whatsapp:      "081234567890",
		Department:    "Finance",
		Tanggal:       pgconv.DateToPgtype(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		Hari:          "Minggu",
		JamMulai:      pgconv.MinutesToPgtime(9 * 60),
		JamBerakhir:   pgconv.MinutesToPgtime(10*60 + 30),
		JumlahPeserta: 8,
		Agenda:        "Budget review",
		NamaRuangan:   "Room A",
		Fasilitas:     "Projector, Whiteboard",
		HeadGa:        headGA,
		HeadOs:        headOS,
		CreatedAt:     pgconv.TimeToPgtype(submittedAt),
		UpdatedAt:     pgconv.TimeToPgtype(submittedAt),
	}
}

func historyRow(id, requestID int64, action, status string) sqlc.MeetingRequestHistory {
	return sqlc.MeetingRequestHistory{
		ID:               id,
		MeetingRequestID: requestID,
		Timestamp:        pgconv.TimeToPgtype(submittedAt.Add(time.Duration(id) * time.Minute)),
		Action:           action,
		By:               "Budi Santoso",
		Whatsapp:         pgconv.StringToPgtype("081234567890"),
		Status:           status,
	}
}

func TestMeetingRequestReadStoreFindByID(t *testing.T) {
	t.Run("success: renders clock times and derived status", func(t *testing.T) {
		q := new(MockMeetingRequestViewQueries)
		q.On("GetMeetingRequestByID", mock.Anything, mock.Anything, int64(3)).Return(meetingRow(3, "approved", "rejected"), nil)
		q.On("ListHistoryByRequest", mock.Anything, mock.Anything, int64(3)).Return([]sqlc.MeetingRequestHistory{
			historyRow(1, 3, meeting.ActionSubmitted, "submitted"),
		}, nil)

		view, err := NewMeetingRequestReadStore(q, nil).FindByID(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, "MTG-3", view.RequestCode)
		assert.Equal(t, "2025-06-01", view.Tanggal)
		assert.Equal(t, "09:00", view.JamMulai)
		assert.Equal(t, "10:30", view.JamBerakhir)
		assert.Equal(t, "rejected", view.Status)
		require.Len(t, view.History, 1)
		assert.Nil(t, view.History[0].Notes)
		require.NotNil(t, view.History[0].Whatsapp)
		assert.Equal(t, "081234567890", *view.History[0].Whatsapp)
		q.AssertExpectations(t)
	})

	t.Run("missing row", func(t *testing.T) {
		q := new(MockMeetingRequestViewQueries)
		q.On("GetMeetingRequestByID", mock.Anything, mock.Anything, int64(4)).Return(sqlc.MeetingRequests{}, pgx.ErrNoRows)

		_, err := NewMeetingRequestReadStore(q, nil).FindByID(context.Background(), 4)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		q.AssertNotCalled(t, "ListHistoryByRequest", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMeetingRequestReadStoreList(t *testing.T) {
	t.Run("groups history per request and keeps empty ledgers non-nil", func(t *testing.T) {
		q := new(MockMeetingRequestViewQueries)
		q.On("ListMeetingRequests", mock.Anything, mock.Anything, pgtype.Text{}).Return([]sqlc.MeetingRequests{
			meetingRow(2, "pending", "pending"),
			meetingRow(1, "approved", "approved"),
		}, nil)
		q.On("ListHistoryByRequests", mock.Anything, mock.Anything, []int64{2, 1}).Return([]sqlc.MeetingRequestHistory{
			historyRow(1, 1, meeting.ActionSubmitted, "submitted"),
			historyRow(2, 1, "Approved by Head GA", "approved"),
		}, nil)

		views, err := NewMeetingRequestReadStore(q, nil).List(context.Background(), nil)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, "pending", views[0].Status)
		assert.NotNil(t, views[0].History)
		assert.Empty(t, views[0].History)
		assert.Equal(t, "approved", views[1].Status)
		assert.Len(t, views[1].History, 2)
	})

	t.Run("status filter is passed down and an empty result skips history", func(t *testing.T) {
		q := new(MockMeetingRequestViewQueries)
		rejected := meeting.StatusRejected
		q.On("ListMeetingRequests", mock.Anything, mock.Anything, pgconv.StringToPgtype("rejected")).Return([]sqlc.MeetingRequests{}, nil)

		views, err := NewMeetingRequestReadStore(q, nil).List(context.Background(), &rejected)

		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
		q.AssertNotCalled(t, "ListHistoryByRequests", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMeetingRequestReadStoreBookings(t *testing.T) {
	date := meeting.MustCalendarDate("2025-06-01")
	q := new(MockMeetingRequestViewQueries)
	q.On("ListBookingsForRoomDate", mock.Anything, mock.Anything, sqlc.ListBookingsForRoomDateParams{
		NamaRuangan: "Room A",
		Tanggal:     pgconv.DateToPgtype(date.Time()),
	}).Return([]sqlc.ListBookingsForRoomDateRow{{
		ID:          5,
		NamaRuangan: "Room A",
		Tanggal:     pgconv.DateToPgtype(date.Time()),
		JamMulai:    pgconv.MinutesToPgtime(13 * 60),
		JamBerakhir: pgconv.MinutesToPgtime(14 * 60),
		HeadGa:      "approved",
		HeadOs:      "approved",
	}}, nil)

	bookings, err := NewMeetingRequestReadStore(q, nil).Bookings(context.Background(), "Room A", date)

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(5), bookings[0].RequestID)
	assert.Equal(t, meeting.StatusApproved, bookings[0].Status)
	assert.Equal(t, "13:00-14:00", bookings[0].Slot.Span.String())
	assert.True(t, bookings[0].Slot.Date.Equal(date))
}
