package components

import (
	"shareit/internal/infra/memstore"
	"shareit/internal/infra/readstore"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/infra/uow"
	"shareit/internal/pkg/config"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// originUserStore names the uncached user read store; the cache layer wraps it
const originUserStore = `name:"originUserStore"`

func PersistenceModule(driver string) fx.Option {
	if driver == config.StorageDriverMemory {
		return memoryModule
	}
	return fx.Module("persistence",
		baseOption,
		readstoreModule,
		uowModule,
	)
}

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.ResultTags(originUserStore),
		),
		// Item
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ItemReadQueries)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Comment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CommentReadQueries)),
		),
		fx.Annotate(
			readstore.NewCommentReadStore,
			fx.As(new(queries.CommentReadStore)),
		),
		// Request
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RequestReadQueries)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
	),
)

// Write repositories are created per transaction by the unit of work
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

var memoryModule = fx.Module("persistence/memory",
	fx.Provide(
		memstore.New,
		fx.Annotate(
			memstore.NewUnitOfWork,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			memstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.ResultTags(originUserStore),
		),
		fx.Annotate(
			memstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		fx.Annotate(
			memstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			memstore.NewCommentReadStore,
			fx.As(new(queries.CommentReadStore)),
		),
		fx.Annotate(
			memstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
