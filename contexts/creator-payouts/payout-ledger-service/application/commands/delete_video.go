package commands

import (
	"context"
	"log/slog"
	"strings"

	application "payline/contexts/creator-payouts/payout-ledger-service/application"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"
)

type DeleteVideoCommand struct {
	VideoID string
	ActorID string
}

type DeleteVideoUseCase struct {
	Repository     ports.Repository
	RefreshCreator RefreshCreatorUseCase
	Logger         *slog.Logger
}

func (uc DeleteVideoUseCase) Execute(ctx context.Context, cmd DeleteVideoCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	videoID := strings.TrimSpace(cmd.VideoID)
	if videoID == "" {
		return domainerrors.ErrInvalidVideoInput
	}

	video, err := uc.Repository.GetVideo(ctx, videoID)
	if err != nil {
		return err
	}
	if err := uc.Repository.DeleteVideo(ctx, videoID); err != nil {
		return err
	}
	if _, err := uc.RefreshCreator.Execute(ctx, RefreshCreatorCommand{Name: video.CreatorName}); err != nil {
		return err
	}

	logger.Info("video deleted",
		"event", "video_deleted",
		"module", "creator-payouts/payout-ledger-service",
		"layer", "application",
		"video_id", videoID,
		"creator_name", video.CreatorName,
		"actor_id", strings.TrimSpace(cmd.ActorID),
	)
	return nil
}
