//go:build unit

package meeting_test

import (
	"testing"
	"time"

	"meeting-room-approval/internal/domain/meeting"
	"meeting-room-approval/internal/domain/user"
	"meeting-room-approval/internal/pkg/errs"
	"meeting-room-approval/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.MeetingRequestBuilder)
	errIs  error
}

func TestNewMeetingRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewMeetingRequestBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		ga, os := actual.ApprovalFields()
		assert.Equal(t, meeting.DecisionPending, ga)
		assert.Equal(t, meeting.DecisionPending, os)
		assert.Equal(t, meeting.StatusPending, actual.Status())
		assert.Equal(t, meeting.AwaitingGA, actual.State())
		assert.Equal(t, "Minggu", actual.Details().Hari())
		assert.Equal(t, []string{"Projector", "Whiteboard"}, actual.Details().Facilities)

		require.Equal(t, 1, actual.History().Len())
		first := actual.History().Entries()[0]
		assert.Equal(t, meeting.EntrySubmitted, first.Status())
		assert.Equal(t, meeting.ActionSubmitted, first.Action())
		assert.Equal(t, "Budi Santoso", first.By())
		assert.Equal(t, "081234567890", first.Whatsapp())
		assert.Equal(t, b.CreatedAt, first.Timestamp())
	})

	runCases(t, []testCase{
		{
			name:   "missing requester name",
			mutate: func(b *builder.MeetingRequestBuilder) { b.Nama = "   " },
			errIs:  meeting.ErrMissingRequester,
		},
		{
			name:   "missing whatsapp",
			mutate: func(b *builder.MeetingRequestBuilder) { b.Whatsapp = "" },
			errIs:  user.ErrMissingWhatsapp,
		},
		{
			name:   "missing department",
			mutate: func(b *builder.MeetingRequestBuilder) { b.Department = "" },
			errIs:  meeting.ErrMissingDepartment,
		},
		{
			name:   "zero participants",
			mutate: func(b *builder.MeetingRequestBuilder) { b.JumlahPeserta = 0 },
			errIs:  meeting.ErrInvalidParticipants,
		},
		{
			name:   "single participant",
			mutate: func(b *builder.MeetingRequestBuilder) { b.JumlahPeserta = 1 },
		},
		{
			name:   "missing agenda",
			mutate: func(b *builder.MeetingRequestBuilder) { b.Agenda = "" },
			errIs:  meeting.ErrMissingAgenda,
		},
		{
			name:   "missing room",
			mutate: func(b *builder.MeetingRequestBuilder) { b.NamaRuangan = "" },
			errIs:  meeting.ErrMissingRoom,
		},
		{
			name:   "end equals start",
			mutate: func(b *builder.MeetingRequestBuilder) { b.JamBerakhir = b.JamMulai },
			errIs:  meeting.ErrEndNotAfterStart,
		},
		{
			name:   "malformed date",
			mutate: func(b *builder.MeetingRequestBuilder) { b.Tanggal = "June 1st" },
			errIs:  meeting.ErrInvalidDate,
		},
		{
			name:   "no facilities",
			mutate: func(b *builder.MeetingRequestBuilder) { b.Fasilitas = nil },
		},
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewMeetingRequestBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestApprovalScenarios(t *testing.T) {
	t0 := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

	t.Run("approved by both heads", func(t *testing.T) {
		r, err := builder.NewMeetingRequestBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = r.ApplyApproval(meeting.ActionApproveGA, "", t0.Add(time.Hour))
		require.NoError(t, err)
		entry, err := r.ApplyApproval(meeting.ActionApproveOS, "enjoy", t0.Add(2*time.Hour))
		require.NoError(t, err)

		assert.Equal(t, meeting.StatusApproved, r.Status())
		assert.Equal(t, 3, r.History().Len())
		last, _ := r.History().Last()
		assert.Equal(t, entry, last)
		assert.Equal(t, meeting.EntryApproved, last.Status())
		assert.Equal(t, "Head OS", last.By())
		assert.Equal(t, "Approved by Head OS", last.Action())
		assert.Equal(t, "enjoy", last.Notes())
	})

	t.Run("rejected by Head GA freezes Head OS", func(t *testing.T) {
		r, err := builder.NewMeetingRequestBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = r.ApplyApproval(meeting.ActionRejectGA, "room unavailable", t0.Add(time.Hour))
		require.NoError(t, err)

		assert.Equal(t, meeting.StatusRejected, r.Status())
		for _, a := range []meeting.Action{meeting.ActionApproveOS, meeting.ActionRejectOS} {
			_, err = r.ApplyApproval(a, "", t0.Add(2*time.Hour))
			assert.ErrorIs(t, err, meeting.ErrOSBeforeGA)
		}
		_, os := r.ApprovalFields()
		assert.Equal(t, meeting.DecisionPending, os)

		require.Equal(t, 2, r.History().Len())
		second := r.History().Entries()[1]
		assert.Equal(t, meeting.EntryRejected, second.Status())
		assert.Equal(t, "room unavailable", second.Notes())
	})

	t.Run("OS before GA leaves the request untouched", func(t *testing.T) {
		r, err := builder.NewMeetingRequestBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = r.ApplyApproval(meeting.ActionApproveOS, "", t0.Add(time.Hour))
		require.ErrorIs(t, err, meeting.ErrOSBeforeGA)
		assert.True(t, errs.Is(err, errs.ErrStateViolation))
		assert.Equal(t, meeting.AwaitingGA, r.State())
		assert.Equal(t, 1, r.History().Len())
	})

	t.Run("timestamps never go backwards", func(t *testing.T) {
		r, err := builder.NewMeetingRequestBuilder().BuildDomain()
		require.NoError(t, err)

		entry, err := r.ApplyApproval(meeting.ActionApproveGA, "", t0.Add(-time.Hour))
		require.NoError(t, err)
		assert.Equal(t, r.CreatedAt(), entry.Timestamp())
	})
}

func TestUpdate(t *testing.T) {
	t0 := time.Date(2025, 5, 21, 8, 0, 0, 0, time.UTC)

	t.Run("edits details and keeps approval", func(t *testing.T) {
		r, err := builder.NewMeetingRequestBuilder().BuildDomain()
		require.NoError(t, err)
		_, err = r.ApplyApproval(meeting.ActionApproveGA, "", t0)
		require.NoError(t, err)

		agenda := "Budget review, round two"
		date := meeting.MustCalendarDate("2025-06-03")
		entry, err := r.Update(meeting.DetailsPatch{Agenda: &agenda, Date: &date}, t0.Add(time.Minute))
		require.NoError(t, err)

		assert.Equal(t, agenda, r.Details().Agenda)
		assert.Equal(t, "Selasa", r.Details().Hari())
		assert.Equal(t, meeting.AwaitingOS, r.State())
		assert.Equal(t, meeting.EntrySubmitted, entry.Status())
		assert.Equal(t, meeting.ActionUpdated, entry.Action())
		assert.Equal(t, meeting.ActorEditor, entry.By())
		assert.Equal(t, meeting.NoteUpdated, entry.Notes())
		assert.Equal(t, 3, r.History().Len())
	})

	t.Run("patching only the end time is checked against the stored start", func(t *testing.T) {
		r, err := builder.NewMeetingRequestBuilder().BuildDomain()
		require.NoError(t, err)

		end := meeting.MustWallClock("08:30")
		_, err = r.Update(meeting.DetailsPatch{End: &end}, t0)
		require.ErrorIs(t, err, meeting.ErrEndNotAfterStart)
		assert.Equal(t, "09:00-10:00", r.Details().Span.String())
		assert.Equal(t, 1, r.History().Len())
	})

	t.Run("blank agenda is rejected", func(t *testing.T) {
		r, err := builder.NewMeetingRequestBuilder().BuildDomain()
		require.NoError(t, err)

		blank := " "
		_, err = r.Update(meeting.DetailsPatch{Agenda: &blank}, t0)
		require.ErrorIs(t, err, meeting.ErrMissingAgenda)
	})
}

func TestReconstructMeetingRequest(t *testing.T) {
	details, err := builder.NewMeetingRequestBuilder().BuildDetails()
	require.NoError(t, err)
	t0 := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

	submitted := meeting.ReconstructHistoryEntry(1, t0, meeting.ActionSubmitted, "Budi", "0812345678", meeting.EntrySubmitted, "")
	approved := meeting.ReconstructHistoryEntry(2, t0.Add(time.Hour), "Approved by Head GA", "Head GA", "", meeting.EntryApproved, "")

	t.Run("valid row", func(t *testing.T) {
		r, err := meeting.ReconstructMeetingRequest(10, "MTG-10", 1, details,
			meeting.DecisionApproved, meeting.DecisionPending,
			[]meeting.HistoryEntry{submitted, approved}, t0, t0)
		require.NoError(t, err)
		assert.Equal(t, meeting.AwaitingOS, r.State())
		assert.Equal(t, int64(10), r.Booking().RequestID)
	})

	t.Run("unreachable approval pair", func(t *testing.T) {
		_, err := meeting.ReconstructMeetingRequest(10, "MTG-10", 1, details,
			meeting.DecisionPending, meeting.DecisionApproved,
			[]meeting.HistoryEntry{submitted}, t0, t0)
		assert.ErrorIs(t, err, meeting.ErrUnreachableState)
	})

	t.Run("history must start with a submission", func(t *testing.T) {
		_, err := meeting.ReconstructMeetingRequest(10, "MTG-10", 1, details,
			meeting.DecisionApproved, meeting.DecisionPending,
			[]meeting.HistoryEntry{approved}, t0, t0)
		assert.ErrorIs(t, err, meeting.ErrHistoryNoOrigin)
	})

	t.Run("history must be ordered", func(t *testing.T) {
		early := meeting.ReconstructHistoryEntry(3, t0.Add(-time.Hour), "Approved by Head GA", "Head GA", "", meeting.EntryApproved, "")
		_, err := meeting.ReconstructMeetingRequest(10, "MTG-10", 1, details,
			meeting.DecisionApproved, meeting.DecisionPending,
			[]meeting.HistoryEntry{submitted, early}, t0, t0)
		assert.ErrorIs(t, err, meeting.ErrHistoryOutOfOrder)
	})
}

func TestRequestCode(t *testing.T) {
	assert.Equal(t, meeting.RequestCode("MTG-42"), meeting.NewRequestCode(42))

	code, err := meeting.ParseRequestCode("MTG-7")
	require.NoError(t, err)
	assert.Equal(t, "MTG-7", code.String())

	for _, bad := range []string{"MTG-", "MTG-0", "REQ-1", "MTG-x"} {
		_, err := meeting.ParseRequestCode(bad)
		assert.ErrorIs(t, err, meeting.ErrInvalidRequestCode, bad)
	}
}

func TestFacilities(t *testing.T) {
	assert.Equal(t, "Projector, TV", meeting.JoinFacilities([]string{" Projector", "", "TV "}))
	assert.Equal(t, []string{"Projector", "TV"}, meeting.SplitFacilities("Projector,TV, "))
	assert.Equal(t, []string{}, meeting.SplitFacilities(""))
}
