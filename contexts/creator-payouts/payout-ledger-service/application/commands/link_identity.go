package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "payline/contexts/creator-payouts/payout-ledger-service/application"
	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"
)

type LinkIdentityCommand struct {
	Name           string
	ExternalUserID string
}

// LinkIdentityUseCase attaches the community-side user id to a creator.
// The link is the one creator field with independent persistence; it
// survives every aggregate recomputation until relinked here.
type LinkIdentityUseCase struct {
	Repository ports.Repository
	Schedule   entities.RankSchedule
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc LinkIdentityUseCase) Execute(ctx context.Context, cmd LinkIdentityCommand) (entities.CreatorProfile, error) {
	logger := application.ResolveLogger(uc.Logger)
	name := entities.NormalizeCreatorName(cmd.Name)
	externalUserID := strings.TrimSpace(cmd.ExternalUserID)
	if name == "" || externalUserID == "" {
		return entities.CreatorProfile{}, domainerrors.ErrInvalidCreatorInput
	}

	profile, err := uc.Repository.GetCreator(ctx, name)
	if errors.Is(err, domainerrors.ErrCreatorNotFound) {
		aggregate, aggErr := uc.Repository.AggregateCreator(ctx, name)
		if aggErr != nil {
			return entities.CreatorProfile{}, aggErr
		}
		profile = entities.CreatorProfile{
			Name:          name,
			LifetimeViews: aggregate.LifetimeViews,
			CurrentRank:   uc.Schedule.DetermineRank(aggregate.LifetimeViews),
			VideoCount:    aggregate.VideoCount,
			TotalPaid:     aggregate.TotalPaid,
			UnpaidAmount:  aggregate.UnpaidAmount,
		}
	} else if err != nil {
		return entities.CreatorProfile{}, err
	}

	profile.ExternalUserID = externalUserID
	profile.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Repository.UpsertCreator(ctx, profile); err != nil {
		return entities.CreatorProfile{}, err
	}

	logger.Info("creator identity linked",
		"event", "creator_identity_linked",
		"module", "creator-payouts/payout-ledger-service",
		"layer", "application",
		"creator_name", name,
		"external_user_id", externalUserID,
	)
	return profile, nil
}
