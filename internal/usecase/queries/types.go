package queries

import (
	"time"
)

// HistoryEntryView is one ledger row as the API renders it.
type HistoryEntryView struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	By        string    `json:"by"`
	Whatsapp  *string   `json:"whatsapp,omitempty"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
}

// MeetingRequestView is the full aggregate with its embedded history.
type MeetingRequestView struct {
	ID            int64              `json:"id"`
	RequestCode   string             `json:"requestCode"`
	UserID        int64              `json:"userId"`
	Nama          string             `json:"nama"`
	Whatsapp      string             `json:"whatsapp"`
	Department    string             `json:"department"`
	Tanggal       string             `json:"tanggal"`
	Hari          string             `json:"hari"`
	JamMulai      string             `json:"jamMulai"`
	JamBerakhir   string             `json:"jamBerakhir"`
	JumlahPeserta int                `json:"jumlahPeserta"`
	Agenda        string             `json:"agenda"`
	NamaRuangan   string             `json:"namaRuangan"`
	Fasilitas     string             `json:"fasilitas"`
	HeadGA        string             `json:"headGA"`
	HeadOS        string             `json:"headOS"`
	Status        string             `json:"status"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	History       []HistoryEntryView `json:"history"`
}

type AvailabilityView struct {
	Room        string   `json:"room"`
	Date        string   `json:"date"`
	Booked      bool     `json:"booked"`
	BookedTimes []string `json:"bookedTimes"`
}

type FacilityRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RoomView struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Capacity    int           `json:"capacity"`
	Location    string        `json:"location"`
	IsHybrid    bool          `json:"isHybrid"`
	Description string        `json:"description"`
	IsActive    bool          `json:"isActive"`
	Facilities  []FacilityRef `json:"facilities"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// EntryView serves facilities and departments.
type EntryView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type OptionsView struct {
	Rooms       []*RoomView  `json:"rooms"`
	Facilities  []*EntryView `json:"facilities"`
	Departments []*EntryView `json:"departments"`
}

type UserView struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FullName   string     `json:"fullName"`
	Whatsapp   string     `json:"whatsapp"`
	Department string     `json:"department"`
	Role       string     `json:"role"`
	IsActive   bool       `json:"isActive"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}
