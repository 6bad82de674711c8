package registry

import "meeting-room-approval/internal/pkg/errs"

var (
	ErrRoomNotFound       = errs.Kind("room not found", errs.ErrNotFound)
	ErrFacilityNotFound   = errs.Kind("facility not found", errs.ErrNotFound)
	ErrDepartmentNotFound = errs.Kind("department not found", errs.ErrNotFound)

	ErrRoomNameTaken       = errs.Kind("room name already exists", errs.ErrConflict)
	ErrFacilityNameTaken   = errs.Kind("facility name already exists", errs.ErrConflict)
	ErrDepartmentNameTaken = errs.Kind("department name already exists", errs.ErrConflict)

	ErrEmptyName       = errs.Kind("name is required", errs.ErrValidation)
	ErrNameTooLong     = errs.Kind("name is too long (max 100 characters)", errs.ErrValidation)
	ErrInvalidCapacity = errs.Kind("capacity must be at least 1", errs.ErrValidation)
	ErrEmptyIDs        = errs.Kind("ids must not be empty", errs.ErrValidation)
	ErrUnknownKind     = errs.Kind("unknown registry kind", errs.ErrValidation)
)
