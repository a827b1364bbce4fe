package entities

import "testing"

func TestDetermineRankBoundaries(t *testing.T) {
	schedule := DefaultRankSchedule()
	cases := []struct {
		views int64
		want  Rank
	}{
		{views: -5, want: RankBronze},
		{views: 0, want: RankBronze},
		{views: 249999, want: RankBronze},
		{views: 250000, want: RankSilver},
		{views: 999999, want: RankSilver},
		{views: 1000000, want: RankGold},
		{views: 2500000, want: RankPlatinum},
		{views: 5000000, want: RankDiamond},
		{views: 9999999, want: RankDiamond},
		{views: 10000000, want: RankLegend},
		{views: 50000000, want: RankLegend},
	}

	for _, tc := range cases {
		if got := schedule.DetermineRank(tc.views); got != tc.want {
			t.Fatalf("views %d: expected %s, got %s", tc.views, tc.want, got)
		}
	}
}

func TestOutranksOrdersTheLadder(t *testing.T) {
	schedule := DefaultRankSchedule()
	if !schedule.Outranks(RankSilver, RankBronze) {
		t.Fatalf("expected silver to outrank bronze")
	}
	if schedule.Outranks(RankBronze, RankSilver) {
		t.Fatalf("expected bronze not to outrank silver")
	}
	if schedule.Outranks(RankGold, RankGold) {
		t.Fatalf("expected a rank not to outrank itself")
	}
	if schedule.Outranks(Rank("mystery"), RankBronze) {
		t.Fatalf("expected an unknown rank to never outrank")
	}
}

func TestNextRankWalksUpAndStops(t *testing.T) {
	schedule := DefaultRankSchedule()
	next, ok := schedule.NextRank(RankBronze)
	if !ok || next != RankSilver {
		t.Fatalf("expected silver after bronze, got %s ok=%v", next, ok)
	}
	if _, ok := schedule.NextRank(RankLegend); ok {
		t.Fatalf("expected legend to be terminal")
	}
	if _, ok := schedule.NextRank(Rank("mystery")); ok {
		t.Fatalf("expected no successor for an unknown rank")
	}
}

func TestViewsToNextRankClampsAtZero(t *testing.T) {
	schedule := DefaultRankSchedule()
	remaining, ok := schedule.ViewsToNextRank(RankBronze, 100000)
	if !ok || remaining != 150000 {
		t.Fatalf("expected 150000 views to silver, got %d ok=%v", remaining, ok)
	}
	remaining, ok = schedule.ViewsToNextRank(RankBronze, 400000)
	if !ok || remaining != 0 {
		t.Fatalf("expected clamp at zero once past the unlock, got %d ok=%v", remaining, ok)
	}
	if _, ok := schedule.ViewsToNextRank(RankLegend, 99999999); ok {
		t.Fatalf("expected no target past the top rank")
	}
}

func TestParseRankNormalizes(t *testing.T) {
	if rank, ok := ParseRank("  GOLD "); !ok || rank != RankGold {
		t.Fatalf("expected gold, got %s ok=%v", rank, ok)
	}
	if _, ok := ParseRank("copper"); ok {
		t.Fatalf("expected unknown rank to fail parsing")
	}
}
