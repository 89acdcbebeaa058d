package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("transaction amount must be positive")
	ErrInvalidKind   = errors.New("invalid transaction kind")
	ErrKindDirection = errors.New("transaction kind does not match direction")
)

// Transaction is the immutable system of record for every balance change.
// A user's balance is always the sum of their transaction amounts; nothing
// may write a balance without appending the matching transaction.
type Transaction struct {
	id          uuid.UUID
	userID      uuid.UUID
	kind        Kind
	amount      int64 // signed; negative = debit
	description string
	createdAt   time.Time
}

// NewCredit records amount points flowing into userID's balance.
func NewCredit(userID uuid.UUID, amount int64, kind Kind, description string, now time.Time) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if kind.IsDebit() {
		return nil, ErrKindDirection
	}
	return &Transaction{
		id:          uuid.New(),
		userID:      userID,
		kind:        kind,
		amount:      amount,
		description: description,
		createdAt:   now,
	}, nil
}

// NewDebit records amount points flowing out of userID's balance. The stored
// amount is negative. The balance check belongs to the caller's transaction
// scope, not here.
func NewDebit(userID uuid.UUID, amount int64, kind Kind, description string, now time.Time) (*Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if !kind.IsDebit() {
		return nil, ErrKindDirection
	}
	return &Transaction{
		id:          uuid.New(),
		userID:      userID,
		kind:        kind,
		amount:      -amount,
		description: description,
		createdAt:   now,
	}, nil
}

func ReconstructTransaction(
	id, userID uuid.UUID,
	kind Kind,
	amount int64,
	description string,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		id:          id,
		userID:      userID,
		kind:        kind,
		amount:      amount,
		description: description,
		createdAt:   createdAt,
	}
}

func (t *Transaction) ID() uuid.UUID        { return t.id }
func (t *Transaction) UserID() uuid.UUID    { return t.userID }
func (t *Transaction) Kind() Kind           { return t.kind }
func (t *Transaction) Amount() int64        { return t.amount }
func (t *Transaction) Description() string  { return t.description }
func (t *Transaction) CreatedAt() time.Time { return t.createdAt }
