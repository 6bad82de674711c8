package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"
	"time"

	"meeting-room-approval/internal/domain/meeting"
	"meeting-room-approval/internal/domain/registry"
	"meeting-room-approval/internal/domain/user"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within runs fn in one read-committed transaction, retried on
	// serialization failures and deadlocks. fn may run more than once.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads reads outside any transaction, for checks before Within.
	CommandReads() CommandReads
}

type Tx interface {
	MeetingRequests() MeetingRequestRepository
	History() HistoryRepository
	Registry() RegistryRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ActiveRoomByName(ctx context.Context, name string) (*RoomSnapshot, error)
	UserByID(ctx context.Context, id int64) (*UserSnapshot, error)
	UserByUsername(ctx context.Context, username string) (*UserSnapshot, error)
}

type MeetingRequestRepository interface {
	// Create assigns the request code and persists the row. History is
	// appended separately.
	Create(ctx context.Context, tx sqlc.DBTX, req *meeting.MeetingRequest) (int64, meeting.RequestCode, error)
	// FindForUpdate loads the aggregate with its history and row-locks it.
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*meeting.MeetingRequest, error)
	UpdateDetails(ctx context.Context, tx sqlc.DBTX, req *meeting.MeetingRequest) error
	UpdateApproval(ctx context.Context, tx sqlc.DBTX, req *meeting.MeetingRequest) error
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) error
	Bookings(ctx context.Context, tx sqlc.DBTX, room string, date meeting.CalendarDate) ([]meeting.Booking, error)
	// LockSlot serializes approvals and reschedules touching the same room and day.
	LockSlot(ctx context.Context, tx sqlc.DBTX, room string, date meeting.CalendarDate) error
}

type HistoryRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, requestID int64, entry meeting.HistoryEntry) (int64, error)
}

type RegistryRepository interface {
	CreateRoom(ctx context.Context, tx sqlc.DBTX, room *registry.Room) (int64, error)
	FindRoom(ctx context.Context, tx sqlc.DBTX, id int64) (*registry.Room, error)
	UpdateRoom(ctx context.Context, tx sqlc.DBTX, room *registry.Room, replaceFacilities bool) error
	CreateEntry(ctx context.Context, tx sqlc.DBTX, kind registry.Kind, entry registry.Entry) (int64, error)
	FindEntry(ctx context.Context, tx sqlc.DBTX, kind registry.Kind, id int64) (registry.Entry, error)
	UpdateEntry(ctx context.Context, tx sqlc.DBTX, kind registry.Kind, entry registry.Entry) error
	Deactivate(ctx context.Context, tx sqlc.DBTX, kind registry.Kind, ids []int64, at time.Time) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (int64, error)
	FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*user.User, error)
	Update(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID int64, at time.Time) error
	Deactivate(ctx context.Context, tx sqlc.DBTX, ids []int64, at time.Time) (int64, error)
}
