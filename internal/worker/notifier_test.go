//go:build unit

package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"couponbid/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubSource struct {
	pending   []*queries.NotificationView
	delivered []uuid.UUID
}

func (s *stubSource) FindUndelivered(_ context.Context, limit int) ([]*queries.NotificationView, error) {
	if limit > len(s.pending) {
		limit = len(s.pending)
	}
	out := make([]*queries.NotificationView, limit)
	copy(out, s.pending[:limit])
	return out, nil
}

func (s *stubSource) MarkDelivered(_ context.Context, id uuid.UUID) error {
	s.delivered = append(s.delivered, id)
	for i, n := range s.pending {
		if n.ID == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			break
		}
	}
	return nil
}

type failingSink struct {
	failFor uuid.UUID
	seen    []uuid.UUID
}

func (s *failingSink) Deliver(_ context.Context, n *queries.NotificationView) error {
	s.seen = append(s.seen, n.ID)
	if n.ID == s.failFor {
		return errors.New("push gateway unavailable")
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers pending rows and marks them", func(t *testing.T) {
		a := &queries.NotificationView{ID: uuid.New(), Message: "you won"}
		b := &queries.NotificationView{ID: uuid.New(), Message: "bid refunded"}
		source := &stubSource{pending: []*queries.NotificationView{a, b}}
		sink := &failingSink{}

		d := NewDispatcher(source, sink, 0, 10, discardLogger())
		d.dispatch(ctx)

		assert.Equal(t, []uuid.UUID{a.ID, b.ID}, sink.seen)
		assert.Equal(t, []uuid.UUID{a.ID, b.ID}, source.delivered)
		assert.Empty(t, source.pending)
	})

	t.Run("a failed delivery stays queued for the next tick", func(t *testing.T) {
		a := &queries.NotificationView{ID: uuid.New(), Message: "you won"}
		b := &queries.NotificationView{ID: uuid.New(), Message: "coupon expired"}
		source := &stubSource{pending: []*queries.NotificationView{a, b}}
		sink := &failingSink{failFor: a.ID}

		d := NewDispatcher(source, sink, 0, 10, discardLogger())
		d.dispatch(ctx)

		assert.Equal(t, []uuid.UUID{b.ID}, source.delivered)
		if assert.Len(t, source.pending, 1) {
			assert.Equal(t, a.ID, source.pending[0].ID)
		}

		// Once the sink recovers, the retry drains it.
		sink.failFor = uuid.Nil
		d.dispatch(ctx)
		assert.Empty(t, source.pending)
	})

	t.Run("respects the batch size", func(t *testing.T) {
		source := &stubSource{}
		for range 5 {
			source.pending = append(source.pending, &queries.NotificationView{ID: uuid.New()})
		}
		sink := &failingSink{}

		d := NewDispatcher(source, sink, 0, 2, discardLogger())
		d.dispatch(ctx)

		assert.Len(t, sink.seen, 2)
		assert.Len(t, source.pending, 3)
	})
}
