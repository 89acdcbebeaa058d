package writerepo

import (
	"context"
	"errors"
	"time"

	"couponbid/internal/domain/user"
	"couponbid/internal/infra"
	"couponbid/internal/infra/db"
	"couponbid/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct{}

func NewUserRepository() shared.UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (id, email, name, password_hash, role, balance)
		VALUES ($1, $2, $3, $4, $5, 0)
		RETURNING id`

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, q, u.ID(), u.Email().String(), u.Name(), u.PasswordHash(), u.Role().String()).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("user email already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

// LockByID serializes all balance mutations for the user behind a row lock.
func (r *UserRepository) LockByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.UserSnapshot, error) {
	const q = `
		SELECT id, email, name, role, balance, last_daily_reward
		FROM users
		WHERE id = $1
		FOR UPDATE`

	var snap shared.UserSnapshot
	err := dbtx.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.Email, &snap.Name, &snap.Role, &snap.Balance, &snap.LastDailyReward,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock user", err)
	}
	return &snap, nil
}

func (r *UserRepository) AddBalance(ctx context.Context, dbtx db.DBTX, id uuid.UUID, delta int64) error {
	const q = `
		UPDATE users
		SET balance = balance + $2, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, id, delta)
	if err != nil {
		return infra.WrapRepoErr("failed to update balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) SetLastDailyReward(ctx context.Context, dbtx db.DBTX, id uuid.UUID, day time.Time) error {
	const q = `
		UPDATE users
		SET last_daily_reward = $2, updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, id, day)
	if err != nil {
		return infra.WrapRepoErr("failed to set last daily reward", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
