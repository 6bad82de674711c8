package converter

import (
	"meeting-room-approval/internal/domain/registry"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/pkg/pgconv"
)

func RoomToCreateParams(r *registry.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		Name:        r.Name(),
		Capacity:    pgconv.IntToInt32(r.Capacity()),
		Location:    pgconv.OptionalStringToPgtype(r.Location()),
		IsHybrid:    r.IsHybrid(),
		Description: pgconv.OptionalStringToPgtype(r.Description()),
		IsActive:    r.IsActive(),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RoomToUpdateParams(r *registry.Room) sqlc.UpdateRoomParams {
	return sqlc.UpdateRoomParams{
		ID:          r.ID(),
		Name:        r.Name(),
		Capacity:    pgconv.IntToInt32(r.Capacity()),
		Location:    pgconv.OptionalStringToPgtype(r.Location()),
		IsHybrid:    r.IsHybrid(),
		Description: pgconv.OptionalStringToPgtype(r.Description()),
		IsActive:    r.IsActive(),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RoomFromRow(row sqlc.Rooms, facilityIDs []int64) *registry.Room {
	entry := registry.ReconstructEntry(
		row.ID,
		row.Name,
		pgconv.StringFromPgtype(row.Description),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
	return registry.ReconstructRoom(entry, int(row.Capacity), pgconv.StringFromPgtype(row.Location), row.IsHybrid, facilityIDs)
}

func FacilityFromRow(row sqlc.Facilities) registry.Entry {
	return registry.ReconstructEntry(
		row.ID,
		row.Name,
		pgconv.StringFromPgtype(row.Description),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func DepartmentFromRow(row sqlc.Departments) registry.Entry {
	return registry.ReconstructEntry(
		row.ID,
		row.Name,
		pgconv.StringFromPgtype(row.Description),
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
