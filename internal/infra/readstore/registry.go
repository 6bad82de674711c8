package readstore

import (
	"context"

	"meeting-room-approval/internal/domain/registry"
	"meeting-room-approval/internal/infra"
	"meeting-room-approval/internal/infra/repository/converter"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/pkg/pgconv"
	"meeting-room-approval/internal/usecase/queries"
)

type RegistryViewQueries interface {
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Rooms, error)
	GetActiveRoomByName(ctx context.Context, db sqlc.DBTX, name string) (sqlc.Rooms, error)
	ListActiveRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Rooms, error)
	ListRoomFacilities(ctx context.Context, db sqlc.DBTX, roomIds []int64) ([]sqlc.ListRoomFacilitiesRow, error)
	GetFacilityByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Facilities, error)
	ListActiveFacilities(ctx context.Context, db sqlc.DBTX) ([]sqlc.Facilities, error)
	GetDepartmentByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Departments, error)
	ListActiveDepartments(ctx context.Context, db sqlc.DBTX) ([]sqlc.Departments, error)
}

type RegistryReadStore struct {
	queries RegistryViewQueries
	db      sqlc.DBTX
}

func NewRegistryReadStore(queries RegistryViewQueries, db sqlc.DBTX) *RegistryReadStore {
	return &RegistryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RegistryReadStore) ListActiveRooms(ctx context.Context) ([]*queries.RoomView, error) {
	rows, err := r.queries.ListActiveRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	return r.withFacilities(ctx, rows)
}

func (r *RegistryReadStore) FindRoomByID(ctx context.Context, id int64) (*queries.RoomView, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room", err)
	}
	views, err := r.withFacilities(ctx, []sqlc.Rooms{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// FindActiveRoomByName matches the exact stored name.
func (r *RegistryReadStore) FindActiveRoomByName(ctx context.Context, name string) (*queries.RoomView, error) {
	row, err := r.queries.GetActiveRoomByName(ctx, r.db, name)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room by name", err)
	}
	views, err := r.withFacilities(ctx, []sqlc.Rooms{row})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (r *RegistryReadStore) ListActiveEntries(ctx context.Context, kind registry.Kind) ([]*queries.EntryView, error) {
	var entries []registry.Entry
	switch kind {
	case registry.KindFacility:
		rows, err := r.queries.ListActiveFacilities(ctx, r.db)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list facilities", err)
		}
		for _, row := range rows {
			entries = append(entries, converter.FacilityFromRow(row))
		}
	case registry.KindDepartment:
		rows, err := r.queries.ListActiveDepartments(ctx, r.db)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list departments", err)
		}
		for _, row := range rows {
			entries = append(entries, converter.DepartmentFromRow(row))
		}
	default:
		return nil, registry.ErrUnknownKind
	}

	views := make([]*queries.EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, toEntryView(e))
	}
	return views, nil
}

func (r *RegistryReadStore) FindEntryByID(ctx context.Context, kind registry.Kind, id int64) (*queries.EntryView, error) {
	var (
		entry registry.Entry
		err   error
	)
	switch kind {
	case registry.KindFacility:
		var row sqlc.Facilities
		if row, err = r.queries.GetFacilityByID(ctx, r.db, id); err == nil {
			entry = converter.FacilityFromRow(row)
		}
	case registry.KindDepartment:
		var row sqlc.Departments
		if row, err = r.queries.GetDepartmentByID(ctx, r.db, id); err == nil {
			entry = converter.DepartmentFromRow(row)
		}
	default:
		return nil, registry.ErrUnknownKind
	}
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(string(kind)+" not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get "+string(kind), err)
	}
	return toEntryView(entry), nil
}

func (r *RegistryReadStore) withFacilities(ctx context.Context, rows []sqlc.Rooms) ([]*queries.RoomView, error) {
	views := make([]*queries.RoomView, 0, len(rows))
	if len(rows) == 0 {
		return views, nil
	}

	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	links, err := r.queries.ListRoomFacilities(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room facilities", err)
	}
	byRoom := make(map[int64][]queries.FacilityRef, len(rows))
	for _, l := range links {
		byRoom[l.RoomID] = append(byRoom[l.RoomID], queries.FacilityRef{ID: l.FacilityID, Name: l.FacilityName})
	}

	for _, row := range rows {
		facilities := byRoom[row.ID]
		if facilities == nil {
			facilities = []queries.FacilityRef{}
		}
		views = append(views, &queries.RoomView{
			ID:          row.ID,
			Name:        row.Name,
			Capacity:    int(row.Capacity),
			Location:    pgconv.StringFromPgtype(row.Location),
			IsHybrid:    row.IsHybrid,
			Description: pgconv.StringFromPgtype(row.Description),
			IsActive:    row.IsActive,
			Facilities:  facilities,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return views, nil
}

func toEntryView(e registry.Entry) *queries.EntryView {
	return &queries.EntryView{
		ID:          e.ID(),
		Name:        e.Name(),
		Description: e.Description(),
		IsActive:    e.IsActive(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}
