package services

import (
	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
)

// CalculatePayment prices a view count against one rank's payout tiers.
// Below the universal floor the result is zero and ineligible. At or above
// it, the floor tier's amount is the base payment and every other tier the
// views have crossed adds a one-time bonus. The rank's per-video cap rides
// along for display; nothing here clamps against it.
func CalculatePayment(views int64, spec entities.RankSpec) entities.PaymentCalculation {
	calc := entities.PaymentCalculation{
		Rank:        spec.Rank,
		PerVideoCap: spec.PerVideoCap,
		Bonuses:     []entities.PayoutTier{},
	}
	if views < entities.EligibilityFloorViews {
		return calc
	}

	calc.Eligible = true
	for _, tier := range spec.PayoutTiers {
		if views < tier.ViewThreshold {
			break
		}
		if tier.ViewThreshold == entities.EligibilityFloorViews {
			calc.BasePayment = tier.Amount
			continue
		}
		calc.BonusAmount += tier.Amount
		calc.Bonuses = append(calc.Bonuses, tier)
	}
	calc.TotalPayment = calc.BasePayment + calc.BonusAmount
	return calc
}
