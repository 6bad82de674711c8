package converter

import (
	"meeting-room-approval/internal/domain/meeting"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/pkg/errs"
	"meeting-room-approval/internal/pkg/pgconv"
)

// ErrMalformedRow reports a stored row the domain cannot represent.
var ErrMalformedRow = errs.Kind("stored row is malformed", errs.ErrPersistence)

func MeetingRequestToCreateParams(req *meeting.MeetingRequest, code meeting.RequestCode) sqlc.CreateMeetingRequestParams {
	d := req.Details()
	headGA, headOS := req.ApprovalFields()
	return sqlc.CreateMeetingRequestParams{
		RequestCode:   code.String(),
		UserID:        req.UserID(),
		Nama:          d.RequesterName,
		Whatsapp:      d.Whatsapp,
		Department:    d.Department,
		Tanggal:       pgconv.DateToPgtype(d.Date.Time()),
		Hari:          d.Hari(),
		JamMulai:      pgconv.MinutesToPgtime(d.Span.Start().Minutes()),
		JamBerakhir:   pgconv.MinutesToPgtime(d.Span.End().Minutes()),
		JumlahPeserta: pgconv.IntToInt32(d.Participants),
		Agenda:        d.Agenda,
		NamaRuangan:   d.Room,
		Fasilitas:     meeting.JoinFacilities(d.Facilities),
		HeadGa:        string(headGA),
		HeadOs:        string(headOS),
		CreatedAt:     pgconv.TimeToPgtype(req.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(req.UpdatedAt()),
	}
}

func MeetingRequestToDetailsParams(req *meeting.MeetingRequest) sqlc.UpdateMeetingRequestDetailsParams {
	d := req.Details()
	return sqlc.UpdateMeetingRequestDetailsParams{
		ID:            req.ID(),
		Nama:          d.RequesterName,
		Whatsapp:      d.Whatsapp,
		Department:    d.Department,
		Tanggal:       pgconv.DateToPgtype(d.Date.Time()),
		Hari:          d.Hari(),
		JamMulai:      pgconv.MinutesToPgtime(d.Span.Start().Minutes()),
		JamBerakhir:   pgconv.MinutesToPgtime(d.Span.End().Minutes()),
		JumlahPeserta: pgconv.IntToInt32(d.Participants),
		Agenda:        d.Agenda,
		NamaRuangan:   d.Room,
		Fasilitas:     meeting.JoinFacilities(d.Facilities),
		UpdatedAt:     pgconv.TimeToPgtype(req.UpdatedAt()),
	}
}

func MeetingRequestToApprovalParams(req *meeting.MeetingRequest) sqlc.UpdateMeetingRequestApprovalParams {
	headGA, headOS := req.ApprovalFields()
	return sqlc.UpdateMeetingRequestApprovalParams{
		ID:        req.ID(),
		HeadGa:    string(headGA),
		HeadOs:    string(headOS),
		UpdatedAt: pgconv.TimeToPgtype(req.UpdatedAt()),
	}
}

func HistoryEntryToCreateParams(requestID int64, e meeting.HistoryEntry) sqlc.CreateHistoryEntryParams {
	return sqlc.CreateHistoryEntryParams{
		MeetingRequestID: requestID,
		Timestamp:        pgconv.TimeToPgtype(e.Timestamp()),
		Action:           e.Action(),
		By:               e.By(),
		Whatsapp:         pgconv.OptionalStringToPgtype(e.Whatsapp()),
		Status:           string(e.Status()),
		Notes:            pgconv.OptionalStringToPgtype(e.Notes()),
	}
}

// SpanFromPgtime rebuilds a stored time range.
func SpanFromPgtime(start, end int) (meeting.TimeRange, error) {
	s, err := meeting.WallClockFromMinutes(start)
	if err != nil {
		return meeting.TimeRange{}, errs.Wrapf(ErrMalformedRow, "start minute %d", start)
	}
	e, err := meeting.WallClockFromMinutes(end)
	if err != nil {
		return meeting.TimeRange{}, errs.Wrapf(ErrMalformedRow, "end minute %d", end)
	}
	span, err := meeting.NewTimeRange(s, e)
	if err != nil {
		return meeting.TimeRange{}, errs.Wrapf(ErrMalformedRow, "range %s-%s", s, e)
	}
	return span, nil
}

func DetailsFromRow(row sqlc.MeetingRequests) (meeting.Details, error) {
	span, err := SpanFromPgtime(pgconv.MinutesFromPgtime(row.JamMulai), pgconv.MinutesFromPgtime(row.JamBerakhir))
	if err != nil {
		return meeting.Details{}, errs.Wrapf(err, "meeting request %d", row.ID)
	}
	return meeting.Details{
		RequesterName: row.Nama,
		Whatsapp:      row.Whatsapp,
		Department:    row.Department,
		Date:          meeting.NewCalendarDate(pgconv.DateFromPgtype(row.Tanggal)),
		Span:          span,
		Participants:  int(row.JumlahPeserta),
		Agenda:        row.Agenda,
		Room:          row.NamaRuangan,
		Facilities:    meeting.SplitFacilities(row.Fasilitas),
	}, nil
}

func HistoryEntryFromRow(row sqlc.MeetingRequestHistory) (meeting.HistoryEntry, error) {
	status := meeting.EntryStatus(row.Status)
	if !status.IsValid() {
		return meeting.HistoryEntry{}, errs.Wrapf(ErrMalformedRow, "history %d status %q", row.ID, row.Status)
	}
	return meeting.ReconstructHistoryEntry(
		row.ID,
		pgconv.TimeFromPgtype(row.Timestamp),
		row.Action,
		row.By,
		pgconv.StringFromPgtype(row.Whatsapp),
		status,
		pgconv.StringFromPgtype(row.Notes),
	), nil
}

// MeetingRequestFromRows rebuilds the aggregate. history must be ordered by
// (timestamp, id).
func MeetingRequestFromRows(row sqlc.MeetingRequests, history []sqlc.MeetingRequestHistory) (*meeting.MeetingRequest, error) {
	details, err := DetailsFromRow(row)
	if err != nil {
		return nil, err
	}
	headGA, err := meeting.ParseDecision(row.HeadGa)
	if err != nil {
		return nil, errs.Wrapf(err, "meeting request %d head_ga", row.ID)
	}
	headOS, err := meeting.ParseDecision(row.HeadOs)
	if err != nil {
		return nil, errs.Wrapf(err, "meeting request %d head_os", row.ID)
	}
	entries := make([]meeting.HistoryEntry, 0, len(history))
	for _, h := range history {
		e, err := HistoryEntryFromRow(h)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	req, err := meeting.ReconstructMeetingRequest(
		row.ID,
		meeting.RequestCode(row.RequestCode),
		row.UserID,
		details,
		headGA,
		headOS,
		entries,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
	if err != nil {
		return nil, errs.Wrapf(err, "meeting request %d", row.ID)
	}
	return req, nil
}

func BookingFromRow(row sqlc.ListBookingsForRoomDateRow) (meeting.Booking, error) {
	span, err := SpanFromPgtime(pgconv.MinutesFromPgtime(row.JamMulai), pgconv.MinutesFromPgtime(row.JamBerakhir))
	if err != nil {
		return meeting.Booking{}, errs.Wrapf(err, "meeting request %d", row.ID)
	}
	return meeting.Booking{
		RequestID: row.ID,
		Slot: meeting.Slot{
			Room: row.NamaRuangan,
			Date: meeting.NewCalendarDate(pgconv.DateFromPgtype(row.Tanggal)),
			Span: span,
		},
		Status: meeting.DeriveStatus(meeting.Decision(row.HeadGa), meeting.Decision(row.HeadOs)),
	}, nil
}
