package worker

import (
	"context"
	"log/slog"
	"time"

	"couponbid/internal/usecase/commands"
)

const sweepBatchSize = 50

// Sweeper periodically expires overdue auctions. ExpireSweep does the real
// work in one transaction per batch; the sweeper only drives the ticker.
type Sweeper struct {
	auctionCommands commands.AuctionCommands
	interval        time.Duration
	logger          *slog.Logger
}

func NewSweeper(auctionCommands commands.AuctionCommands, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		auctionCommands: auctionCommands,
		interval:        interval,
		logger:          logger,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("auction sweeper started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("auction sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	for {
		expired, err := s.auctionCommands.ExpireSweep(ctx, sweepBatchSize)
		if err != nil {
			s.logger.Error("expire sweep failed", "error", err.Error())
			return
		}
		if expired > 0 {
			s.logger.Info("expired overdue auctions", "count", expired)
		}
		// A full batch means more overdue coupons may remain.
		if expired < sweepBatchSize {
			return
		}
	}
}
