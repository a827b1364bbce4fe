package queries

import (
	"log/slog"
	"strings"

	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	"payline/contexts/creator-payouts/payout-ledger-service/domain/services"
)

type LadderTier struct {
	ViewThreshold int64
	Amount        int64
	// RunningTotal is the payout a video earns once it crosses this tier,
	// base plus every bonus so far.
	RunningTotal int64
}

type LadderEntry struct {
	Rank             entities.Rank
	MinLifetimeViews int64
	PerVideoCap      int64
	Tiers            []LadderTier
}

type RankProgress struct {
	LifetimeViews int64
	CurrentRank   entities.Rank
	NextRank      entities.Rank
	ViewsToNext   int64
	AtMaxRank     bool
}

// RateCardUseCase serves the read-only rank surface: the full ladder, a
// rank lookup for a lifetime view count, and pure payment quotes. Nothing
// here writes.
type RateCardUseCase struct {
	Schedule entities.RankSchedule
	Logger   *slog.Logger
}

func (uc RateCardUseCase) Ladder() []LadderEntry {
	specs := uc.Schedule.Specs()
	entries := make([]LadderEntry, 0, len(specs))
	for _, spec := range specs {
		entry := LadderEntry{
			Rank:             spec.Rank,
			MinLifetimeViews: spec.MinLifetimeViews,
			PerVideoCap:      spec.PerVideoCap,
			Tiers:            make([]LadderTier, 0, len(spec.PayoutTiers)),
		}
		running := int64(0)
		for _, tier := range spec.PayoutTiers {
			running += tier.Amount
			entry.Tiers = append(entry.Tiers, LadderTier{
				ViewThreshold: tier.ViewThreshold,
				Amount:        tier.Amount,
				RunningTotal:  running,
			})
		}
		entries = append(entries, entry)
	}
	return entries
}

func (uc RateCardUseCase) Progress(lifetimeViews int64) (RankProgress, error) {
	if lifetimeViews < 0 {
		return RankProgress{}, domainerrors.ErrInvalidListFilter
	}
	current := uc.Schedule.DetermineRank(lifetimeViews)
	progress := RankProgress{
		LifetimeViews: lifetimeViews,
		CurrentRank:   current,
	}
	next, ok := uc.Schedule.NextRank(current)
	if !ok {
		progress.AtMaxRank = true
		return progress, nil
	}
	progress.NextRank = next
	remaining, _ := uc.Schedule.ViewsToNextRank(current, lifetimeViews)
	progress.ViewsToNext = remaining
	return progress, nil
}

// Quote prices a hypothetical view count against a rank without touching
// any record. A blank rank quotes the ladder's first rank.
func (uc RateCardUseCase) Quote(views int64, rawRank string) (entities.PaymentCalculation, error) {
	if views < 0 {
		return entities.PaymentCalculation{}, domainerrors.ErrInvalidVideoInput
	}
	rank := uc.Schedule.FirstRank()
	if raw := strings.TrimSpace(rawRank); raw != "" {
		parsed, ok := entities.ParseRank(raw)
		if !ok {
			return entities.PaymentCalculation{}, domainerrors.ErrUnknownRank
		}
		rank = parsed
	}
	spec, ok := uc.Schedule.SpecFor(rank)
	if !ok {
		return entities.PaymentCalculation{}, domainerrors.ErrUnknownRank
	}
	return services.CalculatePayment(views, spec), nil
}
