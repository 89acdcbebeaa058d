package writerepo

import (
	"context"
	"time"

	"couponbid/internal/infra"
	"couponbid/internal/infra/db"
	"couponbid/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() shared.NotificationRepository {
	return &NotificationRepository{}
}

// Create enqueues a notification in the same transaction as the mutation
// that caused it, so an event is never emitted for a rolled-back change.
func (r *NotificationRepository) Create(ctx context.Context, dbtx db.DBTX, userID uuid.UUID, message string, now time.Time) error {
	const q = `
		INSERT INTO notifications (id, user_id, message, read, delivered, created_at)
		VALUES ($1, $2, $3, false, false, $4)`

	if _, err := dbtx.Exec(ctx, q, uuid.New(), userID, message, now); err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}
