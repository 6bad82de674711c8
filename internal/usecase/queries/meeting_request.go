package queries

//go:generate mockgen -source=meeting_request.go -destination=../../../tests/mock/queries/meeting_request_mock.go -package=queriesmock

import (
	"context"
	"strings"

	"meeting-room-approval/internal/domain/meeting"
	"meeting-room-approval/internal/pkg/errs"
)

type MeetingRequestQueries interface {
	// List returns every request newest first; status filters by the
	// derived status when non-empty.
	List(ctx context.Context, status string) ([]*MeetingRequestView, error)
	GetByID(ctx context.Context, id int64) (*MeetingRequestView, error)
	// History lists the ledger of a request. A missing request has an empty ledger.
	History(ctx context.Context, id int64) ([]HistoryEntryView, error)
	Availability(ctx context.Context, in AvailabilityInput) (*AvailabilityView, error)
}

type MeetingRequestReadStore interface {
	List(ctx context.Context, status *meeting.Status) ([]*MeetingRequestView, error)
	FindByID(ctx context.Context, id int64) (*MeetingRequestView, error)
	History(ctx context.Context, id int64) ([]HistoryEntryView, error)
	Bookings(ctx context.Context, room string, date meeting.CalendarDate) ([]meeting.Booking, error)
}

// AvailabilityInput asks about a room on a day. Start and End are optional;
// without them only the booked ranges are reported. ExcludeID leaves out the
// request being edited.
type AvailabilityInput struct {
	Room      string
	Date      string
	Start     string
	End       string
	ExcludeID int64
}

type meetingRequestQueriesImpl struct {
	readStore MeetingRequestReadStore
}

func NewMeetingRequestQueries(readStore MeetingRequestReadStore) MeetingRequestQueries {
	return &meetingRequestQueriesImpl{
		readStore: readStore,
	}
}

func (q *meetingRequestQueriesImpl) List(ctx context.Context, status string) ([]*MeetingRequestView, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return q.readStore.List(ctx, nil)
	}
	s, err := meeting.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return q.readStore.List(ctx, &s)
}

func (q *meetingRequestQueriesImpl) GetByID(ctx context.Context, id int64) (*MeetingRequestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, meeting.ErrRequestNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *meetingRequestQueriesImpl) History(ctx context.Context, id int64) ([]HistoryEntryView, error) {
	return q.readStore.History(ctx, id)
}

func (q *meetingRequestQueriesImpl) Availability(ctx context.Context, in AvailabilityInput) (*AvailabilityView, error) {
	room := strings.TrimSpace(in.Room)
	if room == "" {
		return nil, meeting.ErrMissingRoom
	}
	date, err := meeting.ParseCalendarDate(in.Date)
	if err != nil {
		return nil, err
	}

	var span *meeting.TimeRange
	if in.Start != "" || in.End != "" {
		r, err := meeting.ParseTimeRange(in.Start, in.End)
		if err != nil {
			return nil, err
		}
		span = &r
	}

	bookings, err := q.readStore.Bookings(ctx, room, date)
	if err != nil {
		return nil, err
	}

	view := &AvailabilityView{Room: room, Date: date.String()}
	if span == nil {
		view.BookedTimes = meeting.BookedTimes(room, date, bookings, in.ExcludeID)
		view.Booked = len(view.BookedTimes) > 0
		return view, nil
	}

	avail := meeting.CheckAvailability(meeting.Slot{Room: room, Date: date, Span: *span}, bookings, in.ExcludeID)
	view.Booked = avail.Booked
	view.BookedTimes = avail.BookedTimes
	return view, nil
}
