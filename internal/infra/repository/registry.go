package repository

import (
	"context"
	"time"

	"meeting-room-approval/internal/domain/registry"
	"meeting-room-approval/internal/infra"
	"meeting-room-approval/internal/infra/repository/converter"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/pkg/pgconv"
)

type RegistryQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) (int64, error)
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Rooms, error)
	UpdateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRoomParams) (int64, error)
	DeactivateRooms(ctx context.Context, db sqlc.DBTX, arg sqlc.DeactivateRoomsParams) (int64, error)
	ListRoomFacilities(ctx context.Context, db sqlc.DBTX, roomIds []int64) ([]sqlc.ListRoomFacilitiesRow, error)
	DeleteRoomFacilities(ctx context.Context, db sqlc.DBTX, roomID int64) error
	AddRoomFacilities(ctx context.Context, db sqlc.DBTX, arg sqlc.AddRoomFacilitiesParams) error

	CreateFacility(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFacilityParams) (int64, error)
	GetFacilityByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Facilities, error)
	UpdateFacility(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateFacilityParams) (int64, error)
	DeactivateFacilities(ctx context.Context, db sqlc.DBTX, arg sqlc.DeactivateFacilitiesParams) (int64, error)

	CreateDepartment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDepartmentParams) (int64, error)
	GetDepartmentByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Departments, error)
	UpdateDepartment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateDepartmentParams) (int64, error)
	DeactivateDepartments(ctx context.Context, db sqlc.DBTX, arg sqlc.DeactivateDepartmentsParams) (int64, error)
}

// RegistryRepository writes rooms, facilities and departments.
type RegistryRepository struct {
	queries RegistryQueries
}

func NewRegistryRepository(queries RegistryQueries) *RegistryRepository {
	return &RegistryRepository{queries: queries}
}

func (r *RegistryRepository) CreateRoom(ctx context.Context, tx sqlc.DBTX, room *registry.Room) (int64, error) {
	id, err := r.queries.CreateRoom(ctx, tx, converter.RoomToCreateParams(room))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create room", err)
	}
	if err := r.attachFacilities(ctx, tx, id, room.FacilityIDs()); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *RegistryRepository) FindRoom(ctx context.Context, tx sqlc.DBTX, id int64) (*registry.Room, error) {
	row, err := r.queries.GetRoomByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room", err)
	}

	links, err := r.queries.ListRoomFacilities(ctx, tx, []int64{id})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room facilities", err)
	}
	facilityIDs := make([]int64, 0, len(links))
	for _, l := range links {
		facilityIDs = append(facilityIDs, l.FacilityID)
	}
	return converter.RoomFromRow(row, facilityIDs), nil
}

func (r *RegistryRepository) UpdateRoom(ctx context.Context, tx sqlc.DBTX, room *registry.Room, replaceFacilities bool) error {
	n, err := r.queries.UpdateRoom(ctx, tx, converter.RoomToUpdateParams(room))
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	if !replaceFacilities {
		return nil
	}
	if err := r.queries.DeleteRoomFacilities(ctx, tx, room.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear room facilities", err)
	}
	return r.attachFacilities(ctx, tx, room.ID(), room.FacilityIDs())
}

func (r *RegistryRepository) attachFacilities(ctx context.Context, tx sqlc.DBTX, roomID int64, facilityIDs []int64) error {
	if len(facilityIDs) == 0 {
		return nil
	}
	err := r.queries.AddRoomFacilities(ctx, tx, sqlc.AddRoomFacilitiesParams{
		RoomID:      roomID,
		FacilityIds: facilityIDs,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to link room facilities", err)
	}
	return nil
}

func (r *RegistryRepository) CreateEntry(ctx context.Context, tx sqlc.DBTX, kind registry.Kind, entry registry.Entry) (int64, error) {
	var (
		id  int64
		err error
	)
	switch kind {
	case registry.KindFacility:
		id, err = r.queries.CreateFacility(ctx, tx, sqlc.CreateFacilityParams{
			Name:        entry.Name(),
			Description: pgconv.OptionalStringToPgtype(entry.Description()),
			IsActive:    entry.IsActive(),
			CreatedAt:   pgconv.TimeToPgtype(entry.CreatedAt()),
			UpdatedAt:   pgconv.TimeToPgtype(entry.UpdatedAt()),
		})
	case registry.KindDepartment:
		id, err = r.queries.CreateDepartment(ctx, tx, sqlc.CreateDepartmentParams{
			Name:        entry.Name(),
			Description: pgconv.OptionalStringToPgtype(entry.Description()),
			IsActive:    entry.IsActive(),
			CreatedAt:   pgconv.TimeToPgtype(entry.CreatedAt()),
			UpdatedAt:   pgconv.TimeToPgtype(entry.UpdatedAt()),
		})
	default:
		return 0, registry.ErrUnknownKind
	}
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create "+string(kind), err)
	}
	return id, nil
}

func (r *RegistryRepository) FindEntry(ctx context.Context, tx sqlc.DBTX, kind registry.Kind, id int64) (registry.Entry, error) {
	var (
		entry registry.Entry
		err   error
	)
	switch kind {
	case registry.KindFacility:
		var row sqlc.Facilities
		if row, err = r.queries.GetFacilityByID(ctx, tx, id); err == nil {
			entry = converter.FacilityFromRow(row)
		}
	case registry.KindDepartment:
		var row sqlc.Departments
		if row, err = r.queries.GetDepartmentByID(ctx, tx, id); err == nil {
			entry = converter.DepartmentFromRow(row)
		}
	default:
		return registry.Entry{}, registry.ErrUnknownKind
	}
	if err != nil {
		if pgconv.IsNoRows(err) {
			return registry.Entry{}, infra.WrapRepoErr(string(kind)+" not found", err, infra.KindNotFound)
		}
		return registry.Entry{}, infra.WrapRepoErr("failed to get "+string(kind), err)
	}
	return entry, nil
}

func (r *RegistryRepository) UpdateEntry(ctx context.Context, tx sqlc.DBTX, kind registry.Kind, entry registry.Entry) error {
	var (
		n   int64
		err error
	)
	switch kind {
	case registry.KindFacility:
		n, err = r.queries.UpdateFacility(ctx, tx, sqlc.UpdateFacilityParams{
			ID:          entry.ID(),
			Name:        entry.Name(),
			Description: pgconv.OptionalStringToPgtype(entry.Description()),
			IsActive:    entry.IsActive(),
			UpdatedAt:   pgconv.TimeToPgtype(entry.UpdatedAt()),
		})
	case registry.KindDepartment:
		n, err = r.queries.UpdateDepartment(ctx, tx, sqlc.UpdateDepartmentParams{
			ID:          entry.ID(),
			Name:        entry.Name(),
			Description: pgconv.OptionalStringToPgtype(entry.Description()),
			IsActive:    entry.IsActive(),
			UpdatedAt:   pgconv.TimeToPgtype(entry.UpdatedAt()),
		})
	default:
		return registry.ErrUnknownKind
	}
	if err != nil {
		return infra.WrapRepoErr("failed to update "+string(kind), err)
	}
	if n == 0 {
		return infra.WrapRepoErr(string(kind)+" not found", nil, infra.KindNotFound)
	}
	return nil
}

// Deactivate soft-deletes the given ids and reports how many were active.
func (r *RegistryRepository) Deactivate(ctx context.Context, tx sqlc.DBTX, kind registry.Kind, ids []int64, at time.Time) (int64, error) {
	var (
		n   int64
		err error
	)
	ts := pgconv.TimeToPgtype(at)
	switch kind {
	case registry.KindRoom:
		n, err = r.queries.DeactivateRooms(ctx, tx, sqlc.DeactivateRoomsParams{UpdatedAt: ts, Ids: ids})
	case registry.KindFacility:
		n, err = r.queries.DeactivateFacilities(ctx, tx, sqlc.DeactivateFacilitiesParams{UpdatedAt: ts, Ids: ids})
	case registry.KindDepartment:
		n, err = r.queries.DeactivateDepartments(ctx, tx, sqlc.DeactivateDepartmentsParams{UpdatedAt: ts, Ids: ids})
	default:
		return 0, registry.ErrUnknownKind
	}
	if err != nil {
		return 0, infra.WrapRepoErr("failed to deactivate "+string(kind), err)
	}
	return n, nil
}
