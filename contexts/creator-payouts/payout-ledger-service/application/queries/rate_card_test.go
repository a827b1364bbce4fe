package queries

import (
	"errors"
	"testing"

	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
)

func TestLadderRunningTotalsReachTheCap(t *testing.T) {
	uc := RateCardUseCase{Schedule: entities.DefaultRankSchedule()}

	entries := uc.Ladder()
	if len(entries) != 6 {
		t.Fatalf("expected six ladder entries, got %d", len(entries))
	}
	for _, entry := range entries {
		last := entry.Tiers[len(entry.Tiers)-1]
		if last.RunningTotal != entry.PerVideoCap {
			t.Fatalf("%s: expected final running total %d to match the cap %d",
				entry.Rank, last.RunningTotal, entry.PerVideoCap)
		}
	}

	bronze := entries[0]
	if bronze.Rank != entities.RankBronze || bronze.MinLifetimeViews != 0 {
		t.Fatalf("expected bronze floor entry first, got %+v", bronze)
	}
	wantRunning := []int64{20, 25, 30}
	for i, tier := range bronze.Tiers {
		if tier.RunningTotal != wantRunning[i] {
			t.Fatalf("bronze tier %d: expected running total %d, got %d", i, wantRunning[i], tier.RunningTotal)
		}
	}
}

func TestProgressMidLadder(t *testing.T) {
	uc := RateCardUseCase{Schedule: entities.DefaultRankSchedule()}

	progress, err := uc.Progress(300000)
	if err != nil {
		t.Fatalf("progress failed: %v", err)
	}
	if progress.CurrentRank != entities.RankSilver || progress.NextRank != entities.RankGold {
		t.Fatalf("expected silver working toward gold, got %+v", progress)
	}
	if progress.ViewsToNext != 700000 || progress.AtMaxRank {
		t.Fatalf("expected 700000 views to gold, got %+v", progress)
	}
}

func TestProgressAtTheTop(t *testing.T) {
	uc := RateCardUseCase{Schedule: entities.DefaultRankSchedule()}

	progress, err := uc.Progress(10000000)
	if err != nil {
		t.Fatalf("progress failed: %v", err)
	}
	if progress.CurrentRank != entities.RankLegend || !progress.AtMaxRank {
		t.Fatalf("expected terminal legend, got %+v", progress)
	}
	if progress.NextRank != "" || progress.ViewsToNext != 0 {
		t.Fatalf("expected no next target at the top, got %+v", progress)
	}
}

func TestProgressRejectsNegativeViews(t *testing.T) {
	uc := RateCardUseCase{Schedule: entities.DefaultRankSchedule()}

	if _, err := uc.Progress(-1); !errors.Is(err, domainerrors.ErrInvalidListFilter) {
		t.Fatalf("expected invalid filter error, got %v", err)
	}
}

func TestQuoteDefaultsToFirstRank(t *testing.T) {
	uc := RateCardUseCase{Schedule: entities.DefaultRankSchedule()}

	calc, err := uc.Quote(25000, "")
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if calc.Rank != entities.RankBronze || calc.TotalPayment != 20 {
		t.Fatalf("expected bronze quote of 20, got %+v", calc)
	}
}

func TestQuoteGoldReel(t *testing.T) {
	uc := RateCardUseCase{Schedule: entities.DefaultRankSchedule()}

	calc, err := uc.Quote(150000, "gold")
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if calc.BasePayment != 30 || calc.BonusAmount != 25 || calc.TotalPayment != 55 {
		t.Fatalf("expected gold quote 30+25=55, got %+v", calc)
	}
}

func TestQuoteBelowFloorIsZero(t *testing.T) {
	uc := RateCardUseCase{Schedule: entities.DefaultRankSchedule()}

	calc, err := uc.Quote(5000, "diamond")
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if calc.Eligible || calc.TotalPayment != 0 {
		t.Fatalf("expected ineligible zero quote, got %+v", calc)
	}
}

func TestQuoteUnknownRank(t *testing.T) {
	uc := RateCardUseCase{Schedule: entities.DefaultRankSchedule()}

	if _, err := uc.Quote(25000, "copper"); !errors.Is(err, domainerrors.ErrUnknownRank) {
		t.Fatalf("expected unknown rank error, got %v", err)
	}
}

func TestQuoteNegativeViews(t *testing.T) {
	uc := RateCardUseCase{Schedule: entities.DefaultRankSchedule()}

	if _, err := uc.Quote(-100, "gold"); !errors.Is(err, domainerrors.ErrInvalidVideoInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}
