package worker

import (
	"context"
	"log/slog"
	"time"

	"couponbid/internal/usecase/queries"

	"github.com/google/uuid"
)

// NotificationSink delivers one notification to the outside world. The
// default sink only logs; a push or email sink satisfies the same interface.
type NotificationSink interface {
	Deliver(ctx context.Context, n *queries.NotificationView) error
}

type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Deliver(_ context.Context, n *queries.NotificationView) error {
	s.logger.Info("notification delivered",
		"notification_id", n.ID,
		"user_id", n.UserID,
		"message", n.Message,
	)
	return nil
}

// UndeliveredSource feeds the dispatcher from the notifications table.
type UndeliveredSource interface {
	FindUndelivered(ctx context.Context, limit int) ([]*queries.NotificationView, error)
	MarkDelivered(ctx context.Context, id uuid.UUID) error
}

// Dispatcher polls for rows written inside command transactions and pushes
// them through the sink. Writing the row and delivering it are decoupled, so
// a slow sink never holds a ledger transaction open.
type Dispatcher struct {
	source    UndeliveredSource
	sink      NotificationSink
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

func NewDispatcher(source UndeliveredSource, sink NotificationSink, interval time.Duration, batchSize int, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		source:    source,
		sink:      sink,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info("notification dispatcher started", "interval", d.interval, "batch_size", d.batchSize)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("notification dispatcher stopped")
			return
		case <-ticker.C:
			d.dispatch(ctx)
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context) {
	pending, err := d.source.FindUndelivered(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("failed to load undelivered notifications", "error", err.Error())
		return
	}

	for _, n := range pending {
		if err := d.sink.Deliver(ctx, n); err != nil {
			// Leave the row undelivered; the next tick retries it.
			d.logger.Warn("notification delivery failed", "notification_id", n.ID, "error", err.Error())
			continue
		}
		if err := d.source.MarkDelivered(ctx, n.ID); err != nil {
			d.logger.Error("failed to mark notification delivered", "notification_id", n.ID, "error", err.Error())
		}
	}
}
