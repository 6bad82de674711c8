package request

import (
	"meeting-room-approval/internal/domain/meeting"
	"meeting-room-approval/internal/usecase/commands"
	"meeting-room-approval/internal/usecase/queries"
)

// CreateMeetingRequestRequest mirrors the booking form. Hari is accepted for
// compatibility but the weekday is always derived from Tanggal.
type CreateMeetingRequestRequest struct {
	UserID        int64  `json:"userId" binding:"omitempty,min=1"`
	Nama          string `json:"nama" binding:"required"`
	Whatsapp      string `json:"whatsapp" binding:"required"`
	Department    string `json:"department" binding:"required"`
	Tanggal       string `json:"tanggal" binding:"required,isodate"`
	Hari          string `json:"hari"`
	JamMulai      string `json:"jamMulai" binding:"required,hhmm"`
	JamBerakhir   string `json:"jamBerakhir" binding:"required,hhmm"`
	JumlahPeserta int    `json:"jumlahPeserta" binding:"required,min=1"`
	Agenda        string `json:"agenda" binding:"required"`
	NamaRuangan   string `json:"namaRuangan" binding:"required"`
	Fasilitas     string `json:"fasilitas"`
}

func (r *CreateMeetingRequestRequest) ToInput() commands.CreateMeetingRequestInput {
	return commands.CreateMeetingRequestInput{
		UserID:        r.UserID,
		Nama:          r.Nama,
		Whatsapp:      r.Whatsapp,
		Department:    r.Department,
		Tanggal:       r.Tanggal,
		JamMulai:      r.JamMulai,
		JamBerakhir:   r.JamBerakhir,
		JumlahPeserta: r.JumlahPeserta,
		Agenda:        r.Agenda,
		NamaRuangan:   r.NamaRuangan,
		Fasilitas:     meeting.SplitFacilities(r.Fasilitas),
	}
}

type UpdateMeetingRequestRequest struct {
	Nama          *string `json:"nama" binding:"omitempty,min=1"`
	Whatsapp      *string `json:"whatsapp" binding:"omitempty,min=1"`
	Department    *string `json:"department" binding:"omitempty,min=1"`
	Tanggal       *string `json:"tanggal" binding:"omitempty,isodate"`
	Hari          *string `json:"hari"`
	JamMulai      *string `json:"jamMulai" binding:"omitempty,hhmm"`
	JamBerakhir   *string `json:"jamBerakhir" binding:"omitempty,hhmm"`
	JumlahPeserta *int    `json:"jumlahPeserta" binding:"omitempty,min=1"`
	Agenda        *string `json:"agenda" binding:"omitempty,min=1"`
	NamaRuangan   *string `json:"namaRuangan" binding:"omitempty,min=1"`
	Fasilitas     *string `json:"fasilitas"`
}

func (r *UpdateMeetingRequestRequest) ToInput() commands.UpdateMeetingRequestInput {
	in := commands.UpdateMeetingRequestInput{
		Nama:          r.Nama,
		Whatsapp:      r.Whatsapp,
		Department:    r.Department,
		Tanggal:       r.Tanggal,
		JamMulai:      r.JamMulai,
		JamBerakhir:   r.JamBerakhir,
		JumlahPeserta: r.JumlahPeserta,
		Agenda:        r.Agenda,
		NamaRuangan:   r.NamaRuangan,
	}
	if r.Fasilitas != nil {
		names := meeting.SplitFacilities(*r.Fasilitas)
		in.Fasilitas = &names
	}
	return in
}

type ApprovalRequest struct {
	Type  string `json:"type" binding:"required,approvalaction"`
	Notes string `json:"notes" binding:"max=1000"`
}

func (r *ApprovalRequest) ToInput() commands.ApprovalInput {
	return commands.ApprovalInput{Type: r.Type, Notes: r.Notes}
}

type AvailabilityQuery struct {
	Room      string `form:"room" json:"room" binding:"required"`
	Date      string `form:"date" json:"date" binding:"required,isodate"`
	Start     string `form:"start" json:"start" binding:"omitempty,hhmm"`
	End       string `form:"end" json:"end" binding:"omitempty,hhmm"`
	ExcludeID int64  `form:"excludeId" json:"excludeId" binding:"omitempty,min=1"`
}

func (q *AvailabilityQuery) ToInput() queries.AvailabilityInput {
	return queries.AvailabilityInput{
		Room:      q.Room,
		Date:      q.Date,
		Start:     q.Start,
		End:       q.End,
		ExcludeID: q.ExcludeID,
	}
}
