package queries

import (
	"context"

	"couponbid/internal/infra"
	"couponbid/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error)
	// MarkRead flips the read flag; it only touches the caller's own rows.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}

type NotificationReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}

type notificationQueriesImpl struct {
	readStore NotificationReadStore
}

func NewNotificationQueries(readStore NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{readStore: readStore}
}

func (q *notificationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error) {
	return q.readStore.FindByUser(ctx, userID)
}

func (q *notificationQueriesImpl) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	err := q.readStore.MarkRead(ctx, id, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}
