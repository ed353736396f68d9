package components

import (
	"gearshare/internal/infra/db"
	"gearshare/internal/infra/readstore"
	"gearshare/internal/infra/uow"
	"gearshare/internal/usecase/commands"
	"gearshare/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewQuerier,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(commands.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(queries.BookingProjectionStore)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
	),
)

func NewQuerier(pool *pgxpool.Pool) db.Querier {
	return pool
}
