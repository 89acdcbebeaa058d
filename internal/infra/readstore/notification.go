package readstore

import (
	"context"

	"couponbid/internal/infra"
	"couponbid/internal/infra/db"
	"couponbid/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

func (s *NotificationReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.NotificationView, error) {
	const q = `
		SELECT id, user_id, message, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 100`

	rows, err := s.db.Query(ctx, q, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var views []*queries.NotificationView
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.UserID, &v.Message, &v.Read, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read notification rows", err)
	}
	return views, nil
}

// FindUndelivered feeds the dispatcher; rows come back oldest first so
// delivery order follows event order per user.
func (s *NotificationReadStore) FindUndelivered(ctx context.Context, limit int) ([]*queries.NotificationView, error) {
	const q = `
		SELECT id, user_id, message, read, created_at
		FROM notifications
		WHERE delivered = false
		ORDER BY created_at ASC
		LIMIT $1`

	rows, err := s.db.Query(ctx, q, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list undelivered notifications", err)
	}
	defer rows.Close()

	var views []*queries.NotificationView
	for rows.Next() {
		var v queries.NotificationView
		if err := rows.Scan(&v.ID, &v.UserID, &v.Message, &v.Read, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan undelivered notification row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read undelivered notification rows", err)
	}
	return views, nil
}

func (s *NotificationReadStore) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	const q = `
		UPDATE notifications
		SET delivered = true
		WHERE id = $1`

	if _, err := s.db.Exec(ctx, q, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification delivered", err)
	}
	return nil
}

func (s *NotificationReadStore) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	const q = `
		UPDATE notifications
		SET read = true
		WHERE id = $1 AND user_id = $2`

	tag, err := s.db.Exec(ctx, q, id, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}
