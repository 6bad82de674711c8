package repository

import (
	"context"

	"meeting-room-approval/internal/domain/meeting"
	"meeting-room-approval/internal/infra"
	"meeting-room-approval/internal/infra/repository/converter"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/pkg/pgconv"
)

type MeetingRequestQueries interface {
	NextMeetingRequestNumber(ctx context.Context, db sqlc.DBTX) (int64, error)
	CreateMeetingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMeetingRequestParams) (int64, error)
	GetMeetingRequestByIDForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.MeetingRequests, error)
	ListHistoryByRequest(ctx context.Context, db sqlc.DBTX, meetingRequestID int64) ([]sqlc.MeetingRequestHistory, error)
	UpdateMeetingRequestDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMeetingRequestDetailsParams) (int64, error)
	UpdateMeetingRequestApproval(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMeetingRequestApprovalParams) (int64, error)
	DeleteMeetingRequest(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
	ListBookingsForRoomDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsForRoomDateParams) ([]sqlc.ListBookingsForRoomDateRow, error)
	LockRoomDate(ctx context.Context, db sqlc.DBTX, arg sqlc.LockRoomDateParams) error
}

type MeetingRequestRepository struct {
	queries MeetingRequestQueries
}

func NewMeetingRequestRepository(queries MeetingRequestQueries) *MeetingRequestRepository {
	return &MeetingRequestRepository{queries: queries}
}

func (r *MeetingRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *meeting.MeetingRequest) (int64, meeting.RequestCode, error) {
	n, err := r.queries.NextMeetingRequestNumber(ctx, tx)
	if err != nil {
		return 0, "", infra.WrapRepoErr("failed to allocate request code", err)
	}
	code := meeting.NewRequestCode(n)

	id, err := r.queries.CreateMeetingRequest(ctx, tx, converter.MeetingRequestToCreateParams(req, code))
	if err != nil {
		return 0, "", infra.WrapRepoErr("failed to create meeting request", err)
	}
	return id, code, nil
}

func (r *MeetingRequestRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*meeting.MeetingRequest, error) {
	row, err := r.queries.GetMeetingRequestByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("meeting request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock meeting request", err)
	}

	history, err := r.queries.ListHistoryByRequest(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load meeting request history", err)
	}

	return converter.MeetingRequestFromRows(row, history)
}

func (r *MeetingRequestRepository) UpdateDetails(ctx context.Context, tx sqlc.DBTX, req *meeting.MeetingRequest) error {
	n, err := r.queries.UpdateMeetingRequestDetails(ctx, tx, converter.MeetingRequestToDetailsParams(req))
	if err != nil {
		return infra.WrapRepoErr("failed to update meeting request details", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("meeting request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MeetingRequestRepository) UpdateApproval(ctx context.Context, tx sqlc.DBTX, req *meeting.MeetingRequest) error {
	n, err := r.queries.UpdateMeetingRequestApproval(ctx, tx, converter.MeetingRequestToApprovalParams(req))
	if err != nil {
		return infra.WrapRepoErr("failed to update meeting request approval", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("meeting request not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the request; history rows go with it through the cascade.
func (r *MeetingRequestRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	n, err := r.queries.DeleteMeetingRequest(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete meeting request", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("meeting request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MeetingRequestRepository) Bookings(ctx context.Context, tx sqlc.DBTX, room string, date meeting.CalendarDate) ([]meeting.Booking, error) {
	rows, err := r.queries.ListBookingsForRoomDate(ctx, tx, sqlc.ListBookingsForRoomDateParams{
		NamaRuangan: room,
		Tanggal:     pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	bookings := make([]meeting.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *MeetingRequestRepository) LockSlot(ctx context.Context, tx sqlc.DBTX, room string, date meeting.CalendarDate) error {
	err := r.queries.LockRoomDate(ctx, tx, sqlc.LockRoomDateParams{
		Room:    room,
		Tanggal: pgconv.DateToPgtype(date.Time()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to lock room slot", err)
	}
	return nil
}
