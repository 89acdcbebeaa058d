package components

import (
	"couponbid/internal/infra/db"
	"couponbid/internal/infra/readstore"
	"couponbid/internal/infra/uow"
	"couponbid/internal/usecase/queries"
	"couponbid/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// UnitOfWork owns the write repositories; commands reach them
		// through the transaction handle.
		uow.NewPostgresUoW,
		// Read stores
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewWalletReadStore,
			fx.As(new(queries.WalletReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
			fx.As(new(worker.UndeliveredSource)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
