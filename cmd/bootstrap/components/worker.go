package components

import (
	"context"
	"log/slog"

	"couponbid/internal/pkg/config"
	"couponbid/internal/usecase/commands"
	"couponbid/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		fx.Annotate(
			worker.NewLogSink,
			fx.As(new(worker.NotificationSink)),
		),
		NewSweeper,
		NewDispatcher,
	),
	fx.Invoke(StartWorkers),
)

func NewSweeper(auctionCommands commands.AuctionCommands, cfg config.Config, logger *slog.Logger) *worker.Sweeper {
	return worker.NewSweeper(auctionCommands, cfg.Auction.SweepInterval, logger)
}

func NewDispatcher(source worker.UndeliveredSource, sink worker.NotificationSink, cfg config.Config, logger *slog.Logger) *worker.Dispatcher {
	return worker.NewDispatcher(source, sink, cfg.Auction.NotifyInterval, cfg.Auction.NotifyBatchSize, logger)
}

func StartWorkers(lc fx.Lifecycle, sweeper *worker.Sweeper, dispatcher *worker.Dispatcher) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweeper.Run(ctx)
			go dispatcher.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
