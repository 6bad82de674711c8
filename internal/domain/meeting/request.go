package meeting

import (
	"strings"
	"time"

	"meeting-room-approval/internal/domain/user"
	"meeting-room-approval/internal/pkg/patch"
)

// Details are the descriptive fields a requester fills in and may edit.
type Details struct {
	RequesterName string
	Whatsapp      string
	Department    string
	Date          CalendarDate
	Span          TimeRange
	Participants  int
	Agenda        string
	Room          string
	Facilities    []string
}

func (d Details) Hari() string { return d.Date.Hari() }

func (d Details) Slot() Slot {
	return Slot{Room: d.Room, Date: d.Date, Span: d.Span}
}

func normalizeDetails(d Details) (Details, error) {
	d.RequesterName = strings.TrimSpace(d.RequesterName)
	d.Department = strings.TrimSpace(d.Department)
	d.Agenda = strings.TrimSpace(d.Agenda)
	d.Room = strings.TrimSpace(d.Room)

	if d.RequesterName == "" {
		return Details{}, ErrMissingRequester
	}
	wa, err := user.NormalizeWhatsapp(d.Whatsapp)
	if err != nil {
		return Details{}, err
	}
	d.Whatsapp = wa
	if d.Department == "" {
		return Details{}, ErrMissingDepartment
	}
	if d.Date.IsZero() {
		return Details{}, ErrInvalidDate
	}
	if d.Span.End().Minutes() <= d.Span.Start().Minutes() {
		return Details{}, ErrEndNotAfterStart
	}
	if d.Participants < 1 {
		return Details{}, ErrInvalidParticipants
	}
	if d.Agenda == "" {
		return Details{}, ErrMissingAgenda
	}
	if d.Room == "" {
		return Details{}, ErrMissingRoom
	}
	d.Facilities = SplitFacilities(JoinFacilities(d.Facilities))
	return d, nil
}

// JoinFacilities renders facility names the way they are stored.
func JoinFacilities(names []string) string {
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, ", ")
}

func SplitFacilities(joined string) []string {
	out := []string{}
	for _, n := range strings.Split(joined, ",") {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// DetailsPatch holds the fields an edit changes; nil leaves a field alone.
type DetailsPatch struct {
	RequesterName *string
	Whatsapp      *string
	Department    *string
	Date          *CalendarDate
	Start         *WallClock
	End           *WallClock
	Participants  *int
	Agenda        *string
	Room          *string
	Facilities    *[]string
}

func (p DetailsPatch) apply(d Details) (Details, error) {
	d.RequesterName = patch.Coalesce(p.RequesterName, d.RequesterName)
	d.Whatsapp = patch.Coalesce(p.Whatsapp, d.Whatsapp)
	d.Department = patch.Coalesce(p.Department, d.Department)
	d.Date = patch.Coalesce(p.Date, d.Date)
	if p.Start != nil || p.End != nil {
		span, err := NewTimeRange(patch.Coalesce(p.Start, d.Span.Start()), patch.Coalesce(p.End, d.Span.End()))
		if err != nil {
			return Details{}, err
		}
		d.Span = span
	}
	d.Participants = patch.Coalesce(p.Participants, d.Participants)
	d.Agenda = patch.Coalesce(p.Agenda, d.Agenda)
	d.Room = patch.Coalesce(p.Room, d.Room)
	d.Facilities = patch.Coalesce(p.Facilities, d.Facilities)
	return normalizeDetails(d)
}

// MeetingRequest owns its approval state and its history.
type MeetingRequest struct {
	id        int64
	code      RequestCode
	userID    int64
	details   Details
	state     State
	history   History
	createdAt time.Time
	updatedAt time.Time
}

// NewMeetingRequest starts a request awaiting Head GA with the submission
// entry already recorded.
func NewMeetingRequest(userID int64, d Details, now time.Time) (*MeetingRequest, error) {
	details, err := normalizeDetails(d)
	if err != nil {
		return nil, err
	}

	r := &MeetingRequest{
		userID:    userID,
		details:   details,
		state:     AwaitingGA,
		createdAt: now,
		updatedAt: now,
	}
	r.history.record(submissionEntry(details.RequesterName, details.Whatsapp, now))
	return r, nil
}

func ReconstructMeetingRequest(
	id int64,
	code RequestCode,
	userID int64,
	details Details,
	headGA, headOS Decision,
	entries []HistoryEntry,
	createdAt, updatedAt time.Time,
) (*MeetingRequest, error) {
	state, err := StateFromFields(headGA, headOS)
	if err != nil {
		return nil, err
	}
	history, err := NewHistory(entries)
	if err != nil {
		return nil, err
	}
	return &MeetingRequest{
		id:        id,
		code:      code,
		userID:    userID,
		details:   details,
		state:     state,
		history:   history,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ApplyApproval moves the workflow and returns the history entry that
// records the step. On error nothing changes.
func (r *MeetingRequest) ApplyApproval(a Action, notes string, now time.Time) (HistoryEntry, error) {
	next, err := r.state.Apply(a)
	if err != nil {
		return HistoryEntry{}, err
	}
	r.state = next
	r.updatedAt = now
	return r.history.record(approvalEntry(a, strings.TrimSpace(notes), now)), nil
}

// Update edits descriptive fields only. Approval fields are untouched.
func (r *MeetingRequest) Update(p DetailsPatch, now time.Time) (HistoryEntry, error) {
	details, err := p.apply(r.details)
	if err != nil {
		return HistoryEntry{}, err
	}
	r.details = details
	r.updatedAt = now
	return r.history.record(editEntry(now)), nil
}

// Booking exposes the request to the conflict checker.
func (r *MeetingRequest) Booking() Booking {
	return Booking{RequestID: r.id, Slot: r.details.Slot(), Status: r.Status()}
}

func (r *MeetingRequest) Status() Status {
	return r.state.Status()
}

func (r *MeetingRequest) ApprovalFields() (headGA, headOS Decision) {
	return r.state.Fields()
}

func (r *MeetingRequest) ID() int64            { return r.id }
func (r *MeetingRequest) Code() RequestCode    { return r.code }
func (r *MeetingRequest) UserID() int64        { return r.userID }
func (r *MeetingRequest) Details() Details     { return r.details }
func (r *MeetingRequest) State() State         { return r.state }
func (r *MeetingRequest) History() History     { return r.history }
func (r *MeetingRequest) CreatedAt() time.Time { return r.createdAt }
func (r *MeetingRequest) UpdatedAt() time.Time { return r.updatedAt }
