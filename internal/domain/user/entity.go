package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. The balance field is a cache over the transaction log; it is
// only ever written together with an appended ledger transaction.
type User struct {
	id              uuid.UUID
	email           Email
	name            string
	passwordHash    string
	role            Role
	balance         int64
	lastDailyReward *time.Time // date of last daily reward claim, UTC midnight
	createdAt       time.Time
	updatedAt       time.Time
}

func NewUser(email Email, name, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	name, passwordHash string,
	role Role,
	balance int64,
	lastDailyReward *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:              id,
		email:           email,
		name:            name,
		passwordHash:    passwordHash,
		role:            role,
		balance:         balance,
		lastDailyReward: lastDailyReward,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// HasClaimedRewardOn reports whether the daily reward was already claimed on
// the calendar day containing the given instant (UTC).
func (u *User) HasClaimedRewardOn(day time.Time) bool {
	return RewardClaimedOn(u.lastDailyReward, day)
}

// RewardClaimedOn is the day-boundary rule behind HasClaimedRewardOn, usable
// against a bare reward timestamp. A nil timestamp means never claimed.
func RewardClaimedOn(last *time.Time, at time.Time) bool {
	if last == nil {
		return false
	}
	y1, m1, d1 := last.UTC().Date()
	y2, m2, d2 := at.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (u *User) ID() uuid.UUID               { return u.id }
func (u *User) Email() Email                { return u.email }
func (u *User) Name() string                { return u.name }
func (u *User) PasswordHash() string        { return u.passwordHash }
func (u *User) Role() Role                  { return u.role }
func (u *User) Balance() int64              { return u.balance }
func (u *User) LastDailyReward() *time.Time { return u.lastDailyReward }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() time.Time        { return u.updatedAt }
