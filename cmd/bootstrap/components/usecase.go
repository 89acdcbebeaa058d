package components

import (
	"couponbid/internal/pkg/clock"
	"couponbid/internal/pkg/config"
	"couponbid/internal/usecase"
	"couponbid/internal/usecase/commands"
	"couponbid/internal/usecase/queries"
	"couponbid/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAuctionUseCase,
		commands.NewBidUseCase,
		NewExchangeUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCouponQueries,
		queries.NewWalletQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewExchangeUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.ExchangeCommands {
	return commands.NewExchangeUseCase(uow, clk, cfg.Auction.DailyRewardPoints)
}
