package queries

//go:generate mockgen -source=registry.go -destination=../../../tests/mock/queries/registry_mock.go -package=queriesmock

import (
	"context"

	"meeting-room-approval/internal/domain/registry"
	"meeting-room-approval/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

type RegistryQueries interface {
	ListRooms(ctx context.Context) ([]*RoomView, error)
	GetRoom(ctx context.Context, id int64) (*RoomView, error)
	ListEntries(ctx context.Context, kind registry.Kind) ([]*EntryView, error)
	GetEntry(ctx context.Context, kind registry.Kind, id int64) (*EntryView, error)
	// Options feeds the request form's selection lists.
	Options(ctx context.Context) (*OptionsView, error)
}

type RegistryReadStore interface {
	ListActiveRooms(ctx context.Context) ([]*RoomView, error)
	FindRoomByID(ctx context.Context, id int64) (*RoomView, error)
	ListActiveEntries(ctx context.Context, kind registry.Kind) ([]*EntryView, error)
	FindEntryByID(ctx context.Context, kind registry.Kind, id int64) (*EntryView, error)
}

type registryQueriesImpl struct {
	readStore RegistryReadStore
}

func NewRegistryQueries(readStore RegistryReadStore) RegistryQueries {
	return &registryQueriesImpl{
		readStore: readStore,
	}
}

func (q *registryQueriesImpl) ListRooms(ctx context.Context) ([]*RoomView, error) {
	return q.readStore.ListActiveRooms(ctx)
}

func (q *registryQueriesImpl) GetRoom(ctx context.Context, id int64) (*RoomView, error) {
	room, err := q.readStore.FindRoomByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, registry.ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (q *registryQueriesImpl) ListEntries(ctx context.Context, kind registry.Kind) ([]*EntryView, error) {
	return q.readStore.ListActiveEntries(ctx, kind)
}

func (q *registryQueriesImpl) GetEntry(ctx context.Context, kind registry.Kind, id int64) (*EntryView, error) {
	entry, err := q.readStore.FindEntryByID(ctx, kind, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, kind.ErrNotFound()
		}
		return nil, err
	}
	return entry, nil
}

func (q *registryQueriesImpl) Options(ctx context.Context) (*OptionsView, error) {
	var out OptionsView
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rooms, err := q.readStore.ListActiveRooms(gctx)
		out.Rooms = rooms
		return err
	})
	g.Go(func() error {
		facilities, err := q.readStore.ListActiveEntries(gctx, registry.KindFacility)
		out.Facilities = facilities
		return err
	})
	g.Go(func() error {
		departments, err := q.readStore.ListActiveEntries(gctx, registry.KindDepartment)
		out.Departments = departments
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
