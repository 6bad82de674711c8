//go:build unit || e2e

package builder

import (
	"time"

	"meeting-room-approval/internal/domain/meeting"
	reqdto "meeting-room-approval/internal/handler/dto/request"
	"meeting-room-approval/internal/usecase/commands"
	"meeting-room-approval/internal/usecase/queries"
)

type MeetingRequestBuilder struct {
	UserID        int64
	Nama          string
	Whatsapp      string
	Department    string
	Tanggal       string
	JamMulai      string
	JamBerakhir   string
	JumlahPeserta int
	Agenda        string
	NamaRuangan   string
	Fasilitas     []string
	HeadGA        meeting.Decision
	HeadOS        meeting.Decision
	CreatedAt     time.Time
}

func NewMeetingRequestBuilder() *MeetingRequestBuilder {
	return &MeetingRequestBuilder{
		UserID:        1,
		Nama:          "Budi Santoso",
		Whatsapp:      "081234567890",
		Department:    "Finance",
		Tanggal:       "2025-06-01",
		JamMulai:      "09:00",
		JamBerakhir:   "10:00",
		JumlahPeserta: 8,
		Agenda:        "Quarterly budget review",
		NamaRuangan:   "Room A",
		Fasilitas:     []string{"Projector", "Whiteboard"},
		HeadGA:        meeting.DecisionPending,
		HeadOS:        meeting.DecisionPending,
		CreatedAt:     time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC),
	}
}

func (b *MeetingRequestBuilder) With(mutate func(*MeetingRequestBuilder)) *MeetingRequestBuilder {
	mutate(b)
	return b
}

func (b *MeetingRequestBuilder) BuildDetails() (meeting.Details, error) {
	date, err := meeting.ParseCalendarDate(b.Tanggal)
	if err != nil {
		return meeting.Details{}, err
	}
	span, err := meeting.ParseTimeRange(b.JamMulai, b.JamBerakhir)
	if err != nil {
		return meeting.Details{}, err
	}
	return meeting.Details{
		RequesterName: b.Nama,
		Whatsapp:      b.Whatsapp,
		Department:    b.Department,
		Date:          date,
		Span:          span,
		Participants:  b.JumlahPeserta,
		Agenda:        b.Agenda,
		Room:          b.NamaRuangan,
		Facilities:    b.Fasilitas,
	}, nil
}

// Build methods
func (b *MeetingRequestBuilder) BuildDomain() (*meeting.MeetingRequest, error) {
	details, err := b.BuildDetails()
	if err != nil {
		return nil, err
	}
	return meeting.NewMeetingRequest(b.UserID, details, b.CreatedAt)
}

// BuildStored reconstructs the request as a repository would load it, with
// the submission entry as its only history.
func (b *MeetingRequestBuilder) BuildStored(id int64) (*meeting.MeetingRequest, error) {
	details, err := b.BuildDetails()
	if err != nil {
		return nil, err
	}
	submitted := meeting.ReconstructHistoryEntry(1, b.CreatedAt, meeting.ActionSubmitted, b.Nama, b.Whatsapp, meeting.EntrySubmitted, "")
	return meeting.ReconstructMeetingRequest(id, meeting.NewRequestCode(id), b.UserID, details,
		b.HeadGA, b.HeadOS, []meeting.HistoryEntry{submitted}, b.CreatedAt, b.CreatedAt)
}

func (b *MeetingRequestBuilder) BuildInput() commands.CreateMeetingRequestInput {
	return commands.CreateMeetingRequestInput{
		UserID:        b.UserID,
		Nama:          b.Nama,
		Whatsapp:      b.Whatsapp,
		Department:    b.Department,
		Tanggal:       b.Tanggal,
		JamMulai:      b.JamMulai,
		JamBerakhir:   b.JamBerakhir,
		JumlahPeserta: b.JumlahPeserta,
		Agenda:        b.Agenda,
		NamaRuangan:   b.NamaRuangan,
		Fasilitas:     b.Fasilitas,
	}
}

func (b *MeetingRequestBuilder) BuildDTO() reqdto.CreateMeetingRequestRequest {
	return reqdto.CreateMeetingRequestRequest{
		UserID:        b.UserID,
		Nama:          b.Nama,
		Whatsapp:      b.Whatsapp,
		Department:    b.Department,
		Tanggal:       b.Tanggal,
		JamMulai:      b.JamMulai,
		JamBerakhir:   b.JamBerakhir,
		JumlahPeserta: b.JumlahPeserta,
		Agenda:        b.Agenda,
		NamaRuangan:   b.NamaRuangan,
		Fasilitas:     meeting.JoinFacilities(b.Fasilitas),
	}
}

// BuildView renders a freshly submitted request as the read side returns it.
func (b *MeetingRequestBuilder) BuildView(id int64) *queries.MeetingRequestView {
	hari := ""
	if d, err := meeting.ParseCalendarDate(b.Tanggal); err == nil {
		hari = d.Hari()
	}
	return &queries.MeetingRequestView{
		ID:            id,
		RequestCode:   meeting.NewRequestCode(id).String(),
		UserID:        b.UserID,
		Nama:          b.Nama,
		Whatsapp:      b.Whatsapp,
		Department:    b.Department,
		Tanggal:       b.Tanggal,
		Hari:          hari,
		JamMulai:      b.JamMulai,
		JamBerakhir:   b.JamBerakhir,
		JumlahPeserta: b.JumlahPeserta,
		Agenda:        b.Agenda,
		NamaRuangan:   b.NamaRuangan,
		Fasilitas:     meeting.JoinFacilities(b.Fasilitas),
		HeadGA:        string(b.HeadGA),
		HeadOS:        string(b.HeadOS),
		Status:        string(meeting.DeriveStatus(b.HeadGA, b.HeadOS)),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
		History: []queries.HistoryEntryView{{
			ID:        1,
			Timestamp: b.CreatedAt,
			Action:    meeting.ActionSubmitted,
			By:        b.Nama,
			Whatsapp:  &b.Whatsapp,
			Status:    string(meeting.EntrySubmitted),
		}},
	}
}
