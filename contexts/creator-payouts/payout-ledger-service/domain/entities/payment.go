package entities

// PaymentCalculation is the itemized result of pricing one view count
// against one rank. It is a pure value, folded into VideoRecord fields at
// calculation time rather than persisted on its own.
type PaymentCalculation struct {
	Rank         Rank
	BasePayment  int64
	BonusAmount  int64
	TotalPayment int64
	Eligible     bool
	Bonuses      []PayoutTier
	PerVideoCap  int64
}
