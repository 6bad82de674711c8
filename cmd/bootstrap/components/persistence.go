package components

import (
	"meeting-room-approval/internal/infra/readstore"
	sqlc "meeting-room-approval/internal/infra/sqlc/generated"
	"meeting-room-approval/internal/infra/uow"
	"meeting-room-approval/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// MeetingRequest
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MeetingRequestViewQueries)),
		),
		fx.Annotate(
			readstore.NewMeetingRequestReadStore,
			fx.As(new(queries.MeetingRequestReadStore)),
		),
		// Registry
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RegistryViewQueries)),
		),
		fx.Annotate(
			readstore.NewRegistryReadStore,
			fx.As(new(queries.RegistryReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
