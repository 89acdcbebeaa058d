//go:build unit

// Package fake provides an in-memory UnitOfWork for command tests. Within
// serializes callers on one mutex the way row locks serialize transactions,
// and restores a snapshot of the store when the callback fails, so commit
// and rollback semantics match the real implementation.
package fake

import (
	"context"
	"sort"
	"sync"
	"time"

	"couponbid/internal/domain/bid"
	"couponbid/internal/domain/coupon"
	"couponbid/internal/domain/ledger"
	"couponbid/internal/domain/user"
	"couponbid/internal/infra"
	"couponbid/internal/infra/db"
	"couponbid/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRow struct {
	ID              uuid.UUID
	Email           string
	Name            string
	PasswordHash    string
	Role            string
	Balance         int64
	LastDailyReward *time.Time
}

type CouponRow struct {
	ID                uuid.UUID
	SellerID          uuid.UUID
	Title             string
	Description       string
	Category          string
	BasePrice         int64
	ExpiryDate        time.Time
	SecretCode        string
	Status            coupon.Status
	WinnerID          *uuid.UUID
	CurrentHighestBid *int64
	UpdatedAt         time.Time
}

type BidRow struct {
	ID        uuid.UUID
	CouponID  uuid.UUID
	BidderID  uuid.UUID
	Amount    int64
	Status    bid.Status
	CreatedAt time.Time
}

type TransactionRow struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Kind        ledger.Kind
	Amount      int64
	Description string
	CreatedAt   time.Time
}

type NotificationRow struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Message   string
	CreatedAt time.Time
}

type Store struct {
	mu            sync.Mutex
	Users         map[uuid.UUID]*UserRow
	Coupons       map[uuid.UUID]*CouponRow
	Bids          map[uuid.UUID]*BidRow
	Transactions  []*TransactionRow
	Notifications []*NotificationRow
}

func NewStore() *Store {
	return &Store{
		Users:   make(map[uuid.UUID]*UserRow),
		Coupons: make(map[uuid.UUID]*CouponRow),
		Bids:    make(map[uuid.UUID]*BidRow),
	}
}

// SeedUser inserts a user row and returns its ID.
func (s *Store) SeedUser(name string, balance int64) uuid.UUID {
	id := uuid.New()
	s.Users[id] = &UserRow{
		ID:      id,
		Email:   name + "@example.com",
		Name:    name,
		Role:    "member",
		Balance: balance,
	}
	return id
}

// SeedCoupon inserts an active coupon row and returns its ID.
func (s *Store) SeedCoupon(sellerID uuid.UUID, title string, basePrice int64, expiry time.Time) uuid.UUID {
	id := uuid.New()
	s.Coupons[id] = &CouponRow{
		ID:          id,
		SellerID:    sellerID,
		Title:       title,
		Description: "a coupon",
		Category:    "food",
		BasePrice:   basePrice,
		ExpiryDate:  expiry,
		SecretCode:  "SECRET-" + title,
		Status:      coupon.StatusActive,
	}
	return id
}

// Balance reads the cached balance of a user row.
func (s *Store) Balance(id uuid.UUID) int64 {
	if row, ok := s.Users[id]; ok {
		return row.Balance
	}
	return 0
}

// LedgerSum recomputes the balance from the transaction log.
func (s *Store) LedgerSum(id uuid.UUID) int64 {
	var sum int64
	for _, t := range s.Transactions {
		if t.UserID == id {
			sum += t.Amount
		}
	}
	return sum
}

// NotificationsFor returns the messages recorded for one user.
func (s *Store) NotificationsFor(id uuid.UUID) []string {
	var out []string
	for _, n := range s.Notifications {
		if n.UserID == id {
			out = append(out, n.Message)
		}
	}
	return out
}

type UoW struct {
	store *Store
}

func NewUoW(store *Store) *UoW {
	return &UoW{store: store}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	snapshot := u.store.clone()
	tx := &fakeTx{store: u.store}
	if err := fn(ctx, tx); err != nil {
		u.store.restore(snapshot)
		return err
	}
	return nil
}

func (u *UoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	return fn(ctx, nil)
}

func (s *Store) clone() *Store {
	c := NewStore()
	for id, row := range s.Users {
		cp := *row
		c.Users[id] = &cp
	}
	for id, row := range s.Coupons {
		cp := *row
		c.Coupons[id] = &cp
	}
	for id, row := range s.Bids {
		cp := *row
		c.Bids[id] = &cp
	}
	c.Transactions = append([]*TransactionRow(nil), s.Transactions...)
	c.Notifications = append([]*NotificationRow(nil), s.Notifications...)
	return c
}

func (s *Store) restore(from *Store) {
	s.Users = from.Users
	s.Coupons = from.Coupons
	s.Bids = from.Bids
	s.Transactions = from.Transactions
	s.Notifications = from.Notifications
}

type fakeTx struct {
	store *Store
}

func (t *fakeTx) Users() shared.UserRepository                 { return &fakeUserRepo{t.store} }
func (t *fakeTx) Coupons() shared.CouponRepository             { return &fakeCouponRepo{t.store} }
func (t *fakeTx) Bids() shared.BidRepository                   { return &fakeBidRepo{t.store} }
func (t *fakeTx) Ledger() shared.LedgerRepository              { return &fakeLedgerRepo{t.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository { return &fakeNotificationRepo{t.store} }
func (t *fakeTx) DB() db.DBTX                                  { return nil }

type fakeUserRepo struct{ store *Store }

func (r *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	for _, row := range r.store.Users {
		if row.Email == u.Email().String() {
			return uuid.Nil, infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
		}
	}
	r.store.Users[u.ID()] = &UserRow{
		ID:           u.ID(),
		Email:        u.Email().String(),
		Name:         u.Name(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
	}
	return u.ID(), nil
}

func (r *fakeUserRepo) LockByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, ok := r.store.Users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &shared.UserSnapshot{
		ID:              row.ID,
		Email:           row.Email,
		Name:            row.Name,
		Role:            row.Role,
		Balance:         row.Balance,
		LastDailyReward: row.LastDailyReward,
	}, nil
}

func (r *fakeUserRepo) AddBalance(_ context.Context, _ db.DBTX, id uuid.UUID, delta int64) error {
	row, ok := r.store.Users[id]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	row.Balance += delta
	return nil
}

func (r *fakeUserRepo) SetLastDailyReward(_ context.Context, _ db.DBTX, id uuid.UUID, day time.Time) error {
	row, ok := r.store.Users[id]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	row.LastDailyReward = &day
	return nil
}

type fakeCouponRepo struct{ store *Store }

func (r *fakeCouponRepo) Create(_ context.Context, _ db.DBTX, c *coupon.Coupon) (uuid.UUID, error) {
	r.store.Coupons[c.ID()] = &CouponRow{
		ID:          c.ID(),
		SellerID:    c.SellerID(),
		Title:       c.Title(),
		Description: c.Description(),
		Category:    c.Category(),
		BasePrice:   c.BasePrice(),
		ExpiryDate:  c.ExpiryDate(),
		SecretCode:  c.SecretCode(),
		Status:      c.Status(),
	}
	return c.ID(), nil
}

func (r *fakeCouponRepo) LockByID(_ context.Context, _ db.DBTX, id uuid.UUID) (*shared.CouponSnapshot, error) {
	row, ok := r.store.Coupons[id]
	if !ok {
		return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return snapshotCoupon(row), nil
}

func (r *fakeCouponRepo) LockExpiredActive(_ context.Context, _ db.DBTX, now time.Time, limit int) ([]*shared.CouponSnapshot, error) {
	var out []*shared.CouponSnapshot
	for _, row := range r.store.Coupons {
		if row.Status == coupon.StatusActive && row.ExpiryDate.Before(now) {
			out = append(out, snapshotCoupon(row))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiryDate.Before(out[j].ExpiryDate) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeCouponRepo) RaiseHighestBid(_ context.Context, _ db.DBTX, id uuid.UUID, amount int64, now time.Time) error {
	row, ok := r.store.Coupons[id]
	if !ok {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	if row.CurrentHighestBid == nil || amount > *row.CurrentHighestBid {
		row.CurrentHighestBid = &amount
	}
	row.UpdatedAt = now
	return nil
}

func (r *fakeCouponRepo) MarkSold(_ context.Context, _ db.DBTX, id, winnerID uuid.UUID, now time.Time) error {
	row, ok := r.store.Coupons[id]
	if !ok || row.Status != coupon.StatusActive || row.WinnerID != nil {
		return infra.WrapRepoErr("coupon not active", nil, infra.KindNotFound)
	}
	row.Status = coupon.StatusSold
	row.WinnerID = &winnerID
	row.UpdatedAt = now
	return nil
}

func (r *fakeCouponRepo) MarkExpired(_ context.Context, _ db.DBTX, id uuid.UUID, now time.Time) error {
	row, ok := r.store.Coupons[id]
	if !ok || row.Status != coupon.StatusActive {
		return infra.WrapRepoErr("coupon not active", nil, infra.KindNotFound)
	}
	row.Status = coupon.StatusExpired
	row.UpdatedAt = now
	return nil
}

func snapshotCoupon(row *CouponRow) *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:                row.ID,
		SellerID:          row.SellerID,
		Title:             row.Title,
		BasePrice:         row.BasePrice,
		ExpiryDate:        row.ExpiryDate,
		Status:            row.Status,
		WinnerID:          row.WinnerID,
		CurrentHighestBid: row.CurrentHighestBid,
	}
}

type fakeBidRepo struct{ store *Store }

func (r *fakeBidRepo) Create(_ context.Context, _ db.DBTX, b *bid.Bid) (uuid.UUID, error) {
	r.store.Bids[b.ID()] = &BidRow{
		ID:        b.ID(),
		CouponID:  b.CouponID(),
		BidderID:  b.BidderID(),
		Amount:    b.Amount(),
		Status:    b.Status(),
		CreatedAt: b.CreatedAt(),
	}
	return b.ID(), nil
}

func (r *fakeBidRepo) PendingByCoupon(_ context.Context, _ db.DBTX, couponID uuid.UUID) ([]*shared.BidSnapshot, error) {
	var out []*shared.BidSnapshot
	for _, row := range r.store.Bids {
		if row.CouponID == couponID && row.Status == bid.StatusPending {
			out = append(out, &shared.BidSnapshot{
				ID:        row.ID,
				CouponID:  row.CouponID,
				BidderID:  row.BidderID,
				Amount:    row.Amount,
				Status:    row.Status,
				CreatedAt: row.CreatedAt,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeBidRepo) UpdateStatus(_ context.Context, _ db.DBTX, bidID uuid.UUID, status bid.Status) error {
	row, ok := r.store.Bids[bidID]
	if !ok || row.Status != bid.StatusPending {
		return infra.WrapRepoErr("bid not pending", nil, infra.KindNotFound)
	}
	row.Status = status
	return nil
}

type fakeLedgerRepo struct{ store *Store }

func (r *fakeLedgerRepo) Append(_ context.Context, _ db.DBTX, t *ledger.Transaction) error {
	r.store.Transactions = append(r.store.Transactions, &TransactionRow{
		ID:          t.ID(),
		UserID:      t.UserID(),
		Kind:        t.Kind(),
		Amount:      t.Amount(),
		Description: t.Description(),
		CreatedAt:   t.CreatedAt(),
	})
	return nil
}

type fakeNotificationRepo struct{ store *Store }

func (r *fakeNotificationRepo) Create(_ context.Context, _ db.DBTX, userID uuid.UUID, message string, now time.Time) error {
	r.store.Notifications = append(r.store.Notifications, &NotificationRow{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		CreatedAt: now,
	})
	return nil
}
