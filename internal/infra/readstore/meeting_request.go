package readstore

import (
	"context"
	"fmt"

	"meeting-room-approval/internal/domain/meeting"
	"meeting-room-approval/internal/infra"
	"meeting-room-approval/internal/infra/repository/converter"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/pkg/pgconv"
	"meeting-room-approval/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type MeetingRequestViewQueries interface {
	GetMeetingRequestByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.MeetingRequests, error)
	ListMeetingRequests(ctx context.Context, db sqlc.DBTX, status pgtype.Text) ([]sqlc.MeetingRequests, error)
	ListHistoryByRequest(ctx context.Context, db sqlc.DBTX, meetingRequestID int64) ([]sqlc.MeetingRequestHistory, error)
	ListHistoryByRequests(ctx context.Context, db sqlc.DBTX, requestIds []int64) ([]sqlc.MeetingRequestHistory, error)
	ListBookingsForRoomDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsForRoomDateParams) ([]sqlc.ListBookingsForRoomDateRow, error)
}

type MeetingRequestReadStore struct {
	queries MeetingRequestViewQueries
	db      sqlc.DBTX
}

func NewMeetingRequestReadStore(queries MeetingRequestViewQueries, db sqlc.DBTX) *MeetingRequestReadStore {
	return &MeetingRequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MeetingRequestReadStore) List(ctx context.Context, status *meeting.Status) ([]*queries.MeetingRequestView, error) {
	var filter pgtype.Text
	if status != nil {
		filter = pgconv.StringToPgtype(string(*status))
	}

	rows, err := r.queries.ListMeetingRequests(ctx, r.db, filter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meeting requests", err)
	}
	if len(rows) == 0 {
		return []*queries.MeetingRequestView{}, nil
	}

	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	history, err := r.queries.ListHistoryByRequests(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meeting request history", err)
	}

	byRequest := make(map[int64][]queries.HistoryEntryView, len(rows))
	for _, h := range history {
		byRequest[h.MeetingRequestID] = append(byRequest[h.MeetingRequestID], toHistoryEntryView(h))
	}

	views := make([]*queries.MeetingRequestView, 0, len(rows))
	for _, row := range rows {
		entries := byRequest[row.ID]
		if entries == nil {
			entries = []queries.HistoryEntryView{}
		}
		views = append(views, toMeetingRequestView(row, entries))
	}
	return views, nil
}

func (r *MeetingRequestReadStore) FindByID(ctx context.Context, id int64) (*queries.MeetingRequestView, error) {
	row, err := r.queries.GetMeetingRequestByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("meeting request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get meeting request", err)
	}

	entries, err := r.History(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMeetingRequestView(row, entries), nil
}

// History never fails for an unknown id; it returns an empty ledger.
func (r *MeetingRequestReadStore) History(ctx context.Context, id int64) ([]queries.HistoryEntryView, error) {
	rows, err := r.queries.ListHistoryByRequest(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list meeting request history", err)
	}
	entries := make([]queries.HistoryEntryView, 0, len(rows))
	for _, h := range rows {
		entries = append(entries, toHistoryEntryView(h))
	}
	return entries, nil
}

func (r *MeetingRequestReadStore) Bookings(ctx context.Context, room string, date meeting.CalendarDate) ([]meeting.Booking, error) {
	rows, err := r.queries.ListBookingsForRoomDate(ctx, r.db, sqlc.ListBookingsForRoomDateParams{
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

func toMeetingRequestView(row sqlc.MeetingRequests, history []queries.HistoryEntryView) *queries.MeetingRequestView {
	return &queries.MeetingRequestView{
		ID:            row.ID,
		RequestCode:   row.RequestCode,
		UserID:        row.UserID,
		Nama:          row.Nama,
		Whatsapp:      row.Whatsapp,
		Department:    row.Department,
		Tanggal:       meeting.NewCalendarDate(pgconv.DateFromPgtype(row.Tanggal)).String(),
		Hari:          row.Hari,
		JamMulai:      clockString(row.JamMulai),
		JamBerakhir:   clockString(row.JamBerakhir),
		JumlahPeserta: int(row.JumlahPeserta),
		Agenda:        row.Agenda,
		NamaRuangan:   row.NamaRuangan,
		Fasilitas:     row.Fasilitas,
		HeadGA:        row.HeadGa,
		HeadOS:        row.HeadOs,
		Status:        string(meeting.DeriveStatus(meeting.Decision(row.HeadGa), meeting.Decision(row.HeadOs))),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		History:       history,
	}
}

func toHistoryEntryView(h sqlc.MeetingRequestHistory) queries.HistoryEntryView {
	return queries.HistoryEntryView{
		ID:        h.ID,
		Timestamp: pgconv.TimeFromPgtype(h.Timestamp),
		Action:    h.Action,
		By:        h.By,
		Whatsapp:  pgconv.StringPtrFromPgtype(h.Whatsapp),
		Status:    h.Status,
		Notes:     pgconv.StringPtrFromPgtype(h.Notes),
	}
}

func clockString(t pgtype.Time) string {
	m := pgconv.MinutesFromPgtime(t)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
