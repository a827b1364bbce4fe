package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	application "payline/contexts/creator-payouts/payout-ledger-service/application"
	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"
	contractsv1 "payline/contracts/gen/events/v1"
)

type RefreshCreatorCommand struct {
	Name string
}

type RefreshCreatorResult struct {
	Profile      entities.CreatorProfile
	Promoted     bool
	PreviousRank entities.Rank
}

// RefreshCreatorUseCase is the get-or-create path for creator profiles.
// Every execution recomputes the aggregate from scratch over non-rejected
// records, derives the rank, and upserts the advisory row while keeping
// the external identity link intact. A rank promotion appends a
// creator.rank.promoted event to the outbox.
type RefreshCreatorUseCase struct {
	Repository ports.Repository
	Outbox     ports.OutboxWriter
	Schedule   entities.RankSchedule
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc RefreshCreatorUseCase) Execute(ctx context.Context, cmd RefreshCreatorCommand) (RefreshCreatorResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	name := entities.NormalizeCreatorName(cmd.Name)
	if name == "" {
		return RefreshCreatorResult{}, domainerrors.ErrInvalidCreatorInput
	}

	aggregate, err := uc.Repository.AggregateCreator(ctx, name)
	if err != nil {
		return RefreshCreatorResult{}, err
	}

	previousRank := uc.Schedule.FirstRank()
	externalUserID := ""
	existing, err := uc.Repository.GetCreator(ctx, name)
	switch {
	case err == nil:
		externalUserID = existing.ExternalUserID
		if existing.CurrentRank != "" {
			previousRank = existing.CurrentRank
		}
	case errors.Is(err, domainerrors.ErrCreatorNotFound):
	default:
		return RefreshCreatorResult{}, err
	}

	now := uc.Clock.Now().UTC()
	profile := entities.CreatorProfile{
		Name:           name,
		ExternalUserID: externalUserID,
		LifetimeViews:  aggregate.LifetimeViews,
		CurrentRank:    uc.Schedule.DetermineRank(aggregate.LifetimeViews),
		VideoCount:     aggregate.VideoCount,
		TotalPaid:      aggregate.TotalPaid,
		UnpaidAmount:   aggregate.UnpaidAmount,
		UpdatedAt:      now,
	}
	if err := uc.Repository.UpsertCreator(ctx, profile); err != nil {
		return RefreshCreatorResult{}, err
	}

	result := RefreshCreatorResult{
		Profile:      profile,
		Promoted:     uc.Schedule.Outranks(profile.CurrentRank, previousRank),
		PreviousRank: previousRank,
	}
	if result.Promoted {
		if err := uc.appendPromotionEvent(ctx, profile, previousRank, now); err != nil {
			return RefreshCreatorResult{}, err
		}
		logger.Info("creator rank promoted",
			"event", "creator_rank_promoted",
			"module", "creator-payouts/payout-ledger-service",
			"layer", "application",
			"creator_name", profile.Name,
			"previous_rank", string(previousRank),
			"new_rank", string(profile.CurrentRank),
			"lifetime_views", profile.LifetimeViews,
		)
	}
	return result, nil
}

func (uc RefreshCreatorUseCase) appendPromotionEvent(
	ctx context.Context,
	profile entities.CreatorProfile,
	previousRank entities.Rank,
	now time.Time,
) error {
	if uc.Outbox == nil || uc.IDGen == nil {
		return nil
	}
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	envelope, err := newPayoutEnvelope(
		eventID,
		EventTypeCreatorRankPromoted,
		profile.Name,
		now,
		contractsv1.CreatorRankPromotedData{
			CreatorName:    profile.Name,
			ExternalUserID: profile.ExternalUserID,
			PreviousRank:   string(previousRank),
			NewRank:        string(profile.CurrentRank),
			LifetimeViews:  profile.LifetimeViews,
			PromotedAt:     now.Format(time.RFC3339),
		},
	)
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}
