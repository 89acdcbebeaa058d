package ledger

// Kind classifies a ledger transaction. The sign of the recorded amount is
// fixed per kind: holds and redemptions debit, everything else credits.
type Kind string

const (
	KindBidHold    Kind = "bid_hold"
	KindBidRefund  Kind = "bid_refund"
	KindPurchase   Kind = "purchase"
	KindReward     Kind = "reward"
	KindRedemption Kind = "redemption"
	KindSaleCredit Kind = "sale_credit"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindBidHold, KindBidRefund, KindPurchase, KindReward, KindRedemption, KindSaleCredit:
		return true
	default:
		return false
	}
}

// IsDebit reports whether transactions of this kind carry a negative amount.
func (k Kind) IsDebit() bool {
	switch k {
	case KindBidHold, KindRedemption:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	kind := Kind(s)
	if !kind.IsValid() {
		return "", ErrInvalidKind
	}
	return kind, nil
}
