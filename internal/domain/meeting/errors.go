package meeting

import "meeting-room-approval/internal/pkg/errs"

var (
	ErrRequestNotFound = errs.Kind("meeting request not found", errs.ErrNotFound)
	ErrSlotTaken       = errs.Kind("room is already booked for an overlapping time", errs.ErrConflict)

	ErrActionNotPermitted = errs.Kind("your role cannot take this approval action", errs.ErrForbidden)

	ErrInvalidAction       = errs.Kind("approval type must be one of approveGA, rejectGA, approveOS, rejectOS", errs.ErrValidation)
	ErrInvalidStatus       = errs.Kind("status must be one of pending, approved, rejected", errs.ErrValidation)
	ErrInvalidTime         = errs.Kind("time must use the HH:MM format", errs.ErrValidation)
	ErrInvalidDate         = errs.Kind("date must use the YYYY-MM-DD format", errs.ErrValidation)
	ErrEndNotAfterStart    = errs.Kind("jamBerakhir must be later than jamMulai", errs.ErrValidation)
	ErrMissingRequester    = errs.Kind("nama is required", errs.ErrValidation)
	ErrMissingDepartment   = errs.Kind("meeting department is required", errs.ErrValidation)
	ErrMissingAgenda       = errs.Kind("agenda is required", errs.ErrValidation)
	ErrMissingRoom         = errs.Kind("namaRuangan is required", errs.ErrValidation)
	ErrInvalidParticipants = errs.Kind("jumlahPeserta must be at least 1", errs.ErrValidation)
	ErrInvalidRequestCode  = errs.Kind("request code must look like MTG-<n>", errs.ErrValidation)

	ErrOSBeforeGA       = errs.Kind("Head OS cannot act before Head GA has approved", errs.ErrStateViolation)
	ErrGAAlreadyDecided = errs.Kind("Head GA has already decided on this request", errs.ErrStateViolation)
	ErrRequestClosed    = errs.Kind("meeting request approval is already complete", errs.ErrStateViolation)

	ErrUnknownDecision   = errs.Kind("stored approval value is unknown", errs.ErrPersistence)
	ErrUnreachableState  = errs.Kind("stored approval fields are not a reachable state", errs.ErrPersistence)
	ErrHistoryOutOfOrder = errs.Kind("stored history is out of order", errs.ErrPersistence)
	ErrHistoryNoOrigin   = errs.Kind("stored history does not start with a submission", errs.ErrPersistence)
)
