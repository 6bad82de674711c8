package commands

//go:generate mockgen -source=meeting_request.go -destination=../../../tests/mock/commands/meeting_request_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"meeting-room-approval/internal/domain/meeting"
	"meeting-room-approval/internal/domain/registry"
	"meeting-room-approval/internal/domain/user"
	"meeting-room-approval/internal/pkg/clock"
	"meeting-room-approval/internal/pkg/errs"
	"meeting-room-approval/internal/usecase/shared"
)

var ErrSubmitForOther = errs.Kind("only an admin may submit a request for another user", errs.ErrForbidden)

// Actor is the authenticated caller.
type Actor struct {
	ID   int64
	Role user.Role
}

type CreateMeetingRequestInput struct {
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
}

// UpdateMeetingRequestInput edits descriptive fields; nil fields are kept.
type UpdateMeetingRequestInput struct {
	Nama          *string
	Whatsapp      *string
	Department    *string
	Tanggal       *string
	JamMulai      *string
	JamBerakhir   *string
	JumlahPeserta *int
	Agenda        *string
	NamaRuangan   *string
	Fasilitas     *[]string
}

type ApprovalInput struct {
	Type  string
	Notes string
}

type CreateMeetingRequestResult struct {
	ID          int64
	RequestCode string
}

type MeetingRequestCommands interface {
	Create(ctx context.Context, in CreateMeetingRequestInput, actor Actor) (*CreateMeetingRequestResult, error)
	ApplyApproval(ctx context.Context, id int64, in ApprovalInput, actor Actor) error
	Update(ctx context.Context, id int64, in UpdateMeetingRequestInput) error
	Delete(ctx context.Context, id int64) error
}

type meetingRequestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMeetingRequestUseCase(uow shared.UnitOfWork, clk clock.Clock) MeetingRequestCommands {
	return &meetingRequestUseCaseImpl{uow: uow, clock: clk}
}

func (uc *meetingRequestUseCaseImpl) Create(ctx context.Context, in CreateMeetingRequestInput, actor Actor) (*CreateMeetingRequestResult, error) {
	requesterID := in.UserID
	if requesterID == 0 {
		requesterID = actor.ID
	}
	if requesterID != actor.ID && actor.Role != user.RoleAdmin {
		return nil, ErrSubmitForOther
	}

	details, err := detailsFromInput(in)
	if err != nil {
		return nil, err
	}

	var result CreateMeetingRequestResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		requester, derr := tx.Reads().UserByID(ctx, requesterID)
		if derr != nil {
			return notFoundAs(derr, user.ErrUserNotFound)
		}
		if !requester.IsActive {
			return user.ErrUserNotFound
		}

		req, derr := meeting.NewMeetingRequest(requesterID, details, uc.clock.Now())
		if derr != nil {
			return derr
		}
		// the stored room name is the normalized one
		details = req.Details()
		if _, derr = tx.Reads().ActiveRoomByName(ctx, details.Room); derr != nil {
			return notFoundAs(derr, registry.ErrRoomNotFound)
		}
		if derr = uc.ensureSlotFree(ctx, tx, req.Details().Slot(), 0); derr != nil {
			return derr
		}

		id, code, derr := tx.MeetingRequests().Create(ctx, tx.DB(), req)
		if derr != nil {
			return notFoundAs(derr, user.ErrUserNotFound)
		}
		submitted, _ := req.History().Last()
		if _, derr = tx.History().Append(ctx, tx.DB(), id, submitted); derr != nil {
			return derr
		}

		result = CreateMeetingRequestResult{ID: id, RequestCode: code.String()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("meeting request submitted", "id", result.ID, "code", result.RequestCode, "room", details.Room, "date", details.Date.String())
	return &result, nil
}

func (uc *meetingRequestUseCaseImpl) ApplyApproval(ctx context.Context, id int64, in ApprovalInput, actor Actor) error {
	action, err := meeting.ParseAction(in.Type)
	if err != nil {
		return err
	}
	if !action.PermittedFor(actor.Role) {
		return meeting.ErrActionNotPermitted
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, derr := tx.MeetingRequests().FindForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			return notFoundAs(derr, meeting.ErrRequestNotFound)
		}

		entry, derr := req.ApplyApproval(action, in.Notes, uc.clock.Now())
		if derr != nil {
			return derr
		}
		if req.Status() == meeting.StatusApproved {
			if derr = uc.ensureSlotFree(ctx, tx, req.Details().Slot(), req.ID()); derr != nil {
				return derr
			}
		}

		if derr = tx.MeetingRequests().UpdateApproval(ctx, tx.DB(), req); derr != nil {
			return notFoundAs(derr, meeting.ErrRequestNotFound)
		}
		if _, derr = tx.History().Append(ctx, tx.DB(), req.ID(), entry); derr != nil {
			return derr
		}
		return nil
	})
}

func (uc *meetingRequestUseCaseImpl) Update(ctx context.Context, id int64, in UpdateMeetingRequestInput) error {
	patch, err := patchFromInput(in)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, derr := tx.MeetingRequests().FindForUpdate(ctx, tx.DB(), id)
		if derr != nil {
			return notFoundAs(derr, meeting.ErrRequestNotFound)
		}
		before := req.Details()

		entry, derr := req.Update(patch, uc.clock.Now())
		if derr != nil {
			return derr
		}

		after := req.Details()
		if after.Room != before.Room {
			if _, derr = tx.Reads().ActiveRoomByName(ctx, after.Room); derr != nil {
				return notFoundAs(derr, registry.ErrRoomNotFound)
			}
		}
		if !after.Slot().Equal(before.Slot()) {
			if derr = uc.ensureSlotFree(ctx, tx, after.Slot(), req.ID()); derr != nil {
				return derr
			}
		}

		if derr = tx.MeetingRequests().UpdateDetails(ctx, tx.DB(), req); derr != nil {
			return notFoundAs(derr, meeting.ErrRequestNotFound)
		}
		if _, derr = tx.History().Append(ctx, tx.DB(), req.ID(), entry); derr != nil {
			return derr
		}
		return nil
	})
}

func (uc *meetingRequestUseCaseImpl) Delete(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.MeetingRequests().Delete(ctx, tx.DB(), id); derr != nil {
			return notFoundAs(derr, meeting.ErrRequestNotFound)
		}
		return nil
	})
}

// ensureSlotFree takes the room/day lock before reading bookings so that a
// concurrent approval of an overlapping request waits for this transaction.
func (uc *meetingRequestUseCaseImpl) ensureSlotFree(ctx context.Context, tx shared.Tx, slot meeting.Slot, exclude int64) error {
	if err := tx.MeetingRequests().LockSlot(ctx, tx.DB(), slot.Room, slot.Date); err != nil {
		return err
	}
	bookings, err := tx.MeetingRequests().Bookings(ctx, tx.DB(), slot.Room, slot.Date)
	if err != nil {
		return err
	}
	return meeting.EnsureFree(slot, bookings, exclude)
}

func detailsFromInput(in CreateMeetingRequestInput) (meeting.Details, error) {
	date, err := meeting.ParseCalendarDate(in.Tanggal)
	if err != nil {
		return meeting.Details{}, err
	}
	span, err := meeting.ParseTimeRange(in.JamMulai, in.JamBerakhir)
	if err != nil {
		return meeting.Details{}, err
	}
	return meeting.Details{
		RequesterName: in.Nama,
		Whatsapp:      in.Whatsapp,
		Department:    in.Department,
		Date:          date,
		Span:          span,
		Participants:  in.JumlahPeserta,
		Agenda:        in.Agenda,
		Room:          in.NamaRuangan,
		Facilities:    in.Fasilitas,
	}, nil
}

func patchFromInput(in UpdateMeetingRequestInput) (meeting.DetailsPatch, error) {
	p := meeting.DetailsPatch{
		RequesterName: in.Nama,
		Whatsapp:      in.Whatsapp,
		Department:    in.Department,
		Participants:  in.JumlahPeserta,
		Agenda:        in.Agenda,
		Room:          in.NamaRuangan,
		Facilities:    in.Fasilitas,
	}
	if in.Tanggal != nil {
		d, err := meeting.ParseCalendarDate(*in.Tanggal)
		if err != nil {
			return meeting.DetailsPatch{}, err
		}
		p.Date = &d
	}
	if in.JamMulai != nil {
		w, err := meeting.ParseWallClock(*in.JamMulai)
		if err != nil {
			return meeting.DetailsPatch{}, err
		}
		p.Start = &w
	}
	if in.JamBerakhir != nil {
		w, err := meeting.ParseWallClock(*in.JamBerakhir)
		if err != nil {
			return meeting.DetailsPatch{}, err
		}
		p.End = &w
	}
	return p, nil
}

// notFoundAs replaces a generic not-found with the caller's sentinel.
func notFoundAs(err, sentinel error) error {
	if errs.Is(err, errs.ErrNotFound) {
		return sentinel
	}
	return err
}
