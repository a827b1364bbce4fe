package queries

import (
	"context"
	"log/slog"
	"sort"

	application "payline/contexts/creator-payouts/payout-ledger-service/application"
	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"
)

type CreatorQueriesUseCase struct {
	Repository ports.Repository
	Schedule   entities.RankSchedule
	Logger     *slog.Logger
}

// ListCreatorsWithRanks recomputes every creator from their video records.
// Stored creator rows contribute only the external identity link; views,
// counts and ranks come fresh from the aggregation.
func (uc CreatorQueriesUseCase) ListCreatorsWithRanks(ctx context.Context) ([]entities.CreatorProfile, error) {
	logger := application.ResolveLogger(uc.Logger)

	aggregates, err := uc.Repository.AggregateAllCreators(ctx)
	if err != nil {
		return nil, err
	}
	stored, err := uc.Repository.ListCreators(ctx)
	if err != nil {
		return nil, err
	}
	identities := make(map[string]string, len(stored))
	for _, profile := range stored {
		identities[profile.Name] = profile.ExternalUserID
	}

	profiles := make([]entities.CreatorProfile, 0, len(aggregates))
	for _, aggregate := range aggregates {
		profiles = append(profiles, entities.CreatorProfile{
			Name:           aggregate.Name,
			ExternalUserID: identities[aggregate.Name],
			LifetimeViews:  aggregate.LifetimeViews,
			CurrentRank:    uc.Schedule.DetermineRank(aggregate.LifetimeViews),
			VideoCount:     aggregate.VideoCount,
			TotalPaid:      aggregate.TotalPaid,
			UnpaidAmount:   aggregate.UnpaidAmount,
		})
	}
	sort.Slice(profiles, func(i, j int) bool {
		if profiles[i].LifetimeViews == profiles[j].LifetimeViews {
			return profiles[i].Name < profiles[j].Name
		}
		return profiles[i].LifetimeViews > profiles[j].LifetimeViews
	})

	logger.Debug("creator roster served",
		"event", "creator_roster_served",
		"module", "creator-payouts/payout-ledger-service",
		"layer", "application",
		"creator_count", len(profiles),
	)
	return profiles, nil
}
