package commands

//go:generate mockgen -source=registry.go -destination=../../../tests/mock/commands/registry_mock.go -package=commandsmock

import (
	"context"

	"meeting-room-approval/internal/domain/registry"
	"meeting-room-approval/internal/infra"
	"meeting-room-approval/internal/pkg/clock"
	"meeting-room-approval/internal/pkg/errs"
	"meeting-room-approval/internal/usecase/shared"
)

type RoomInput struct {
	Name        string
	Capacity    int
	Location    string
	IsHybrid    bool
	Description string
	FacilityIDs []int64
}

type RoomPatchInput struct {
	Name        *string
	Capacity    *int
	Location    *string
	IsHybrid    *bool
	Description *string
	IsActive    *bool
	FacilityIDs *[]int64
}

type EntryInput struct {
	Name        string
	Description string
}

type EntryPatchInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

type RegistryCommands interface {
	CreateRoom(ctx context.Context, in RoomInput) (int64, error)
	UpdateRoom(ctx context.Context, id int64, in RoomPatchInput) error
	CreateEntry(ctx context.Context, kind registry.Kind, in EntryInput) (int64, error)
	UpdateEntry(ctx context.Context, kind registry.Kind, id int64, in EntryPatchInput) error
	// Deactivate soft-deletes one record; an unknown or inactive id is not found.
	Deactivate(ctx context.Context, kind registry.Kind, id int64) error
	// DeactivateMany soft-deletes every listed id and reports how many changed.
	DeactivateMany(ctx context.Context, kind registry.Kind, ids []int64) (int64, error)
}

type registryUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRegistryUseCase(uow shared.UnitOfWork, clk clock.Clock) RegistryCommands {
	return &registryUseCaseImpl{uow: uow, clock: clk}
}

func (uc *registryUseCaseImpl) CreateRoom(ctx context.Context, in RoomInput) (int64, error) {
	room, err := registry.NewRoom(registry.RoomSpec{
		Name:        in.Name,
		Capacity:    in.Capacity,
		Location:    in.Location,
		IsHybrid:    in.IsHybrid,
		Description: in.Description,
		FacilityIDs: in.FacilityIDs,
	}, uc.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Registry().CreateRoom(ctx, tx.DB(), room)
		if derr != nil {
			return registryWriteErr(registry.KindRoom, derr)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *registryUseCaseImpl) UpdateRoom(ctx context.Context, id int64, in RoomPatchInput) error {
	patch := registry.RoomPatch{
		EntryPatch: registry.EntryPatch{
			Name:        in.Name,
			Description: in.Description,
			IsActive:    in.IsActive,
		},
		Capacity:    in.Capacity,
		Location:    in.Location,
		IsHybrid:    in.IsHybrid,
		FacilityIDs: in.FacilityIDs,
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, derr := tx.Registry().FindRoom(ctx, tx.DB(), id)
		if derr != nil {
			return registryWriteErr(registry.KindRoom, derr)
		}
		if derr = room.Apply(patch, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Registry().UpdateRoom(ctx, tx.DB(), room, in.FacilityIDs != nil); derr != nil {
			return registryWriteErr(registry.KindRoom, derr)
		}
		return nil
	})
}

func (uc *registryUseCaseImpl) CreateEntry(ctx context.Context, kind registry.Kind, in EntryInput) (int64, error) {
	entry, err := registry.NewEntry(in.Name, in.Description, uc.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Registry().CreateEntry(ctx, tx.DB(), kind, entry)
		if derr != nil {
			return registryWriteErr(kind, derr)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *registryUseCaseImpl) UpdateEntry(ctx context.Context, kind registry.Kind, id int64, in EntryPatchInput) error {
	patch := registry.EntryPatch{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    in.IsActive,
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entry, derr := tx.Registry().FindEntry(ctx, tx.DB(), kind, id)
		if derr != nil {
			return registryWriteErr(kind, derr)
		}
		if derr = entry.Apply(patch, uc.clock.Now()); derr != nil {
			return derr
		}
		if derr = tx.Registry().UpdateEntry(ctx, tx.DB(), kind, entry); derr != nil {
			return registryWriteErr(kind, derr)
		}
		return nil
	})
}

func (uc *registryUseCaseImpl) Deactivate(ctx context.Context, kind registry.Kind, id int64) error {
	n, err := uc.DeactivateMany(ctx, kind, []int64{id})
	if err != nil {
		if errs.Is(err, registry.ErrEmptyIDs) {
			return kind.ErrNotFound()
		}
		return err
	}
	if n == 0 {
		return kind.ErrNotFound()
	}
	return nil
}

func (uc *registryUseCaseImpl) DeactivateMany(ctx context.Context, kind registry.Kind, ids []int64) (int64, error) {
	ids, err := registry.DedupeIDs(ids)
	if err != nil {
		return 0, err
	}

	var n int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		changed, derr := tx.Registry().Deactivate(ctx, tx.DB(), kind, ids, uc.clock.Now())
		if derr != nil {
			return derr
		}
		n = changed
		return nil
	})
	return n, err
}

// registryWriteErr turns constraint failures into registry errors. A broken
// room_facilities foreign key means an unknown facility id.
func registryWriteErr(kind registry.Kind, err error) error {
	switch {
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return registry.ErrFacilityNotFound
	case errs.Is(err, errs.ErrConflict):
		return kind.ErrNameTaken()
	case errs.Is(err, errs.ErrNotFound):
		return kind.ErrNotFound()
	}
	return err
}
