package services

import (
	"testing"

	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
)

func specFor(t *testing.T, rank entities.Rank) entities.RankSpec {
	t.Helper()
	spec, ok := entities.DefaultRankSchedule().SpecFor(rank)
	if !ok {
		t.Fatalf("missing spec for rank %s", rank)
	}
	return spec
}

func TestCalculatePaymentAcrossRanks(t *testing.T) {
	cases := []struct {
		rank      entities.Rank
		views     int64
		wantBase  int64
		wantBonus int64
		wantTotal int64
	}{
		{rank: entities.RankBronze, views: 150000, wantBase: 20, wantBonus: 10, wantTotal: 30},
		{rank: entities.RankSilver, views: 150000, wantBase: 25, wantBonus: 15, wantTotal: 40},
		{rank: entities.RankGold, views: 150000, wantBase: 30, wantBonus: 25, wantTotal: 55},
		{rank: entities.RankPlatinum, views: 150000, wantBase: 40, wantBonus: 20, wantTotal: 60},
		{rank: entities.RankDiamond, views: 150000, wantBase: 50, wantBonus: 30, wantTotal: 80},
		{rank: entities.RankLegend, views: 150000, wantBase: 60, wantBonus: 40, wantTotal: 100},
	}

	for _, tc := range cases {
		calc := CalculatePayment(tc.views, specFor(t, tc.rank))
		if !calc.Eligible {
			t.Fatalf("%s: expected eligible at %d views", tc.rank, tc.views)
		}
		if calc.BasePayment != tc.wantBase || calc.BonusAmount != tc.wantBonus || calc.TotalPayment != tc.wantTotal {
			t.Fatalf("%s: expected %d+%d=%d, got %d+%d=%d",
				tc.rank, tc.wantBase, tc.wantBonus, tc.wantTotal,
				calc.BasePayment, calc.BonusAmount, calc.TotalPayment)
		}
	}
}

func TestCalculatePaymentBelowFloor(t *testing.T) {
	calc := CalculatePayment(19999, specFor(t, entities.RankBronze))
	if calc.Eligible {
		t.Fatalf("expected ineligible below the floor")
	}
	if calc.TotalPayment != 0 || calc.BasePayment != 0 || calc.BonusAmount != 0 {
		t.Fatalf("expected zero payment below the floor, got %+v", calc)
	}
}

func TestCalculatePaymentAtFloorExactly(t *testing.T) {
	calc := CalculatePayment(20000, specFor(t, entities.RankBronze))
	if !calc.Eligible || calc.BasePayment != 20 || calc.BonusAmount != 0 {
		t.Fatalf("expected base-only payment at the floor, got %+v", calc)
	}
}

func TestCalculatePaymentTopTierCapsOutTheLadder(t *testing.T) {
	calc := CalculatePayment(5000000, specFor(t, entities.RankLegend))
	if calc.TotalPayment != 250 {
		t.Fatalf("expected the full legend ladder 250, got %d", calc.TotalPayment)
	}
	if calc.TotalPayment != calc.PerVideoCap {
		t.Fatalf("expected the full ladder to equal the per-video cap, got %d and %d", calc.TotalPayment, calc.PerVideoCap)
	}
	if len(calc.Bonuses) != 3 {
		t.Fatalf("expected all three bonus tiers crossed, got %d", len(calc.Bonuses))
	}
}
