package entities

import (
	"fmt"
	"strings"
)

type Rank string

const (
	RankBronze   Rank = "bronze"
	RankSilver   Rank = "silver"
	RankGold     Rank = "gold"
	RankPlatinum Rank = "platinum"
	RankDiamond  Rank = "diamond"
	RankLegend   Rank = "legend"
)

func ParseRank(raw string) (Rank, bool) {
	switch Rank(strings.ToLower(strings.TrimSpace(raw))) {
	case RankBronze:
		return RankBronze, true
	case RankSilver:
		return RankSilver, true
	case RankGold:
		return RankGold, true
	case RankPlatinum:
		return RankPlatinum, true
	case RankDiamond:
		return RankDiamond, true
	case RankLegend:
		return RankLegend, true
	default:
		return "", false
	}
}

// EligibilityFloorViews is the universal payout floor. No payment exists
// below it regardless of rank, and every rank's first payout tier sits
// exactly at it.
const EligibilityFloorViews int64 = 20000

type PayoutTier struct {
	ViewThreshold int64
	Amount        int64
}

// RankSpec keeps one rank's unlock threshold, per-video cap and payout
// tiers in a single record so the three can never drift apart.
type RankSpec struct {
	Rank             Rank
	MinLifetimeViews int64
	PerVideoCap      int64
	PayoutTiers      []PayoutTier
}

// RankSchedule is an immutable, ordered rank ladder. Build it once with
// NewRankSchedule and share it; all methods are read-only.
type RankSchedule struct {
	specs []RankSpec
}

func NewRankSchedule(specs []RankSpec) (RankSchedule, error) {
	if len(specs) == 0 {
		return RankSchedule{}, fmt.Errorf("rank schedule: at least one rank is required")
	}
	if specs[0].MinLifetimeViews != 0 {
		return RankSchedule{}, fmt.Errorf("rank schedule: first rank must unlock at zero lifetime views")
	}

	seen := make(map[Rank]struct{}, len(specs))
	for i, spec := range specs {
		name := Rank(strings.ToLower(strings.TrimSpace(string(spec.Rank))))
		if name == "" {
			return RankSchedule{}, fmt.Errorf("rank schedule: rank %d has an empty name", i)
		}
		if _, dup := seen[name]; dup {
			return RankSchedule{}, fmt.Errorf("rank schedule: duplicate rank %q", name)
		}
		seen[name] = struct{}{}

		if i > 0 {
			if spec.MinLifetimeViews <= specs[i-1].MinLifetimeViews {
				return RankSchedule{}, fmt.Errorf("rank schedule: unlock threshold must increase at rank %q", name)
			}
			if spec.PerVideoCap <= specs[i-1].PerVideoCap {
				return RankSchedule{}, fmt.Errorf("rank schedule: per-video cap must increase at rank %q", name)
			}
		}

		if len(spec.PayoutTiers) == 0 {
			return RankSchedule{}, fmt.Errorf("rank schedule: rank %q has no payout tiers", name)
		}
		if spec.PayoutTiers[0].ViewThreshold != EligibilityFloorViews {
			return RankSchedule{}, fmt.Errorf("rank schedule: rank %q first payout tier must sit at the eligibility floor", name)
		}
		for t, tier := range spec.PayoutTiers {
			if tier.Amount <= 0 {
				return RankSchedule{}, fmt.Errorf("rank schedule: rank %q payout tier %d has a non-positive amount", name, t)
			}
			if t > 0 && tier.ViewThreshold <= spec.PayoutTiers[t-1].ViewThreshold {
				return RankSchedule{}, fmt.Errorf("rank schedule: rank %q payout tier thresholds must increase", name)
			}
		}
	}

	copied := make([]RankSpec, len(specs))
	for i, spec := range specs {
		copied[i] = spec
		copied[i].Rank = Rank(strings.ToLower(strings.TrimSpace(string(spec.Rank))))
		copied[i].PayoutTiers = append([]PayoutTier(nil), spec.PayoutTiers...)
	}
	return RankSchedule{specs: copied}, nil
}

func mustRankSchedule(specs []RankSpec) RankSchedule {
	schedule, err := NewRankSchedule(specs)
	if err != nil {
		panic(err)
	}
	return schedule
}

// DefaultRankSchedule is the production ladder. Per-video caps equal the
// sum of the rank's tier amounts, so the cap is the maximum total a single
// video can reach and is surfaced for display rather than clamping.
func DefaultRankSchedule() RankSchedule {
	return mustRankSchedule([]RankSpec{
		{
			Rank:             RankBronze,
			MinLifetimeViews: 0,
			PerVideoCap:      30,
			PayoutTiers: []PayoutTier{
				{ViewThreshold: 20000, Amount: 20},
				{ViewThreshold: 40000, Amount: 5},
				{ViewThreshold: 75000, Amount: 5},
			},
		},
		{
			Rank:             RankSilver,
			MinLifetimeViews: 250000,
			PerVideoCap:      45,
			PayoutTiers: []PayoutTier{
				{ViewThreshold: 20000, Amount: 25},
				{ViewThreshold: 50000, Amount: 5},
				{ViewThreshold: 100000, Amount: 10},
				{ViewThreshold: 250000, Amount: 5},
			},
		},
		{
			Rank:             RankGold,
			MinLifetimeViews: 1000000,
			PerVideoCap:      70,
			PayoutTiers: []PayoutTier{
				{ViewThreshold: 20000, Amount: 30},
				{ViewThreshold: 75000, Amount: 10},
				{ViewThreshold: 150000, Amount: 15},
				{ViewThreshold: 500000, Amount: 15},
			},
		},
		{
			Rank:             RankPlatinum,
			MinLifetimeViews: 2500000,
			PerVideoCap:      110,
			PayoutTiers: []PayoutTier{
				{ViewThreshold: 20000, Amount: 40},
				{ViewThreshold: 100000, Amount: 20},
				{ViewThreshold: 250000, Amount: 25},
				{ViewThreshold: 750000, Amount: 25},
			},
		},
		{
			Rank:             RankDiamond,
			MinLifetimeViews: 5000000,
			PerVideoCap:      170,
			PayoutTiers: []PayoutTier{
				{ViewThreshold: 20000, Amount: 50},
				{ViewThreshold: 100000, Amount: 30},
				{ViewThreshold: 500000, Amount: 40},
				{ViewThreshold: 1000000, Amount: 50},
			},
		},
		{
			Rank:             RankLegend,
			MinLifetimeViews: 10000000,
			PerVideoCap:      250,
			PayoutTiers: []PayoutTier{
				{ViewThreshold: 20000, Amount: 60},
				{ViewThreshold: 150000, Amount: 40},
				{ViewThreshold: 750000, Amount: 60},
				{ViewThreshold: 2000000, Amount: 90},
			},
		},
	})
}

func (s RankSchedule) Specs() []RankSpec {
	out := make([]RankSpec, len(s.specs))
	for i, spec := range s.specs {
		out[i] = spec
		out[i].PayoutTiers = append([]PayoutTier(nil), spec.PayoutTiers...)
	}
	return out
}

func (s RankSchedule) SpecFor(rank Rank) (RankSpec, bool) {
	for _, spec := range s.specs {
		if spec.Rank == rank {
			out := spec
			out.PayoutTiers = append([]PayoutTier(nil), spec.PayoutTiers...)
			return out, true
		}
	}
	return RankSpec{}, false
}

// DetermineRank returns the highest rank whose unlock threshold is at or
// below the given lifetime views. The first rank unlocks at zero, so this
// is total; negative input clamps to the first rank.
func (s RankSchedule) DetermineRank(lifetimeViews int64) Rank {
	current := s.specs[0].Rank
	for _, spec := range s.specs {
		if lifetimeViews >= spec.MinLifetimeViews {
			current = spec.Rank
		}
	}
	return current
}

// NextRank returns the rank above the given one, or false at the top of
// the ladder.
func (s RankSchedule) NextRank(rank Rank) (Rank, bool) {
	for i, spec := range s.specs {
		if spec.Rank == rank {
			if i+1 >= len(s.specs) {
				return "", false
			}
			return s.specs[i+1].Rank, true
		}
	}
	return "", false
}

// FirstRank is the ladder's floor, the rank every creator starts at.
func (s RankSchedule) FirstRank() Rank {
	return s.specs[0].Rank
}

// Outranks reports whether a sits above b on the ladder. Unknown ranks
// never outrank anything.
func (s RankSchedule) Outranks(a, b Rank) bool {
	indexOf := func(rank Rank) int {
		for i, spec := range s.specs {
			if spec.Rank == rank {
				return i
			}
		}
		return -1
	}
	ai, bi := indexOf(a), indexOf(b)
	return ai >= 0 && bi >= 0 && ai > bi
}

// ViewsToNextRank returns the remaining lifetime views before the next
// unlock, clamped at zero. False means the rank is terminal or unknown.
func (s RankSchedule) ViewsToNextRank(rank Rank, lifetimeViews int64) (int64, bool) {
	for i, spec := range s.specs {
		if spec.Rank == rank {
			if i+1 >= len(s.specs) {
				return 0, false
			}
			remaining := s.specs[i+1].MinLifetimeViews - lifetimeViews
			if remaining < 0 {
				remaining = 0
			}
			return remaining, true
		}
	}
	return 0, false
}
