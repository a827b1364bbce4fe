package commands

import (
	"context"
	"log/slog"
	"strings"

	application "payline/contexts/creator-payouts/payout-ledger-service/application"
	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"
)

type RejectVideoCommand struct {
	VideoID string
	Reason  string
	ActorID string
}

type RejectVideoResult struct {
	Video   entities.VideoRecord
	Creator entities.CreatorProfile
}

// RejectVideoUseCase moves a pending or eligible record to rejected with a
// mandatory reason. Rejected records drop out of every creator aggregate,
// so the profile is refreshed afterwards.
type RejectVideoUseCase struct {
	Repository     ports.Repository
	RefreshCreator RefreshCreatorUseCase
	Logger         *slog.Logger
}

func (uc RejectVideoUseCase) Execute(ctx context.Context, cmd RejectVideoCommand) (RejectVideoResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	videoID := strings.TrimSpace(cmd.VideoID)
	if videoID == "" {
		return RejectVideoResult{}, domainerrors.ErrInvalidVideoInput
	}
	reason := strings.TrimSpace(cmd.Reason)
	if reason == "" {
		return RejectVideoResult{}, domainerrors.ErrRejectionReasonRequired
	}

	video, err := uc.Repository.GetVideo(ctx, videoID)
	if err != nil {
		return RejectVideoResult{}, err
	}
	if video.Status == entities.PaymentStatusPaid {
		return RejectVideoResult{}, alreadyPaidError(video)
	}
	if video.Status == entities.PaymentStatusRejected {
		return RejectVideoResult{}, domainerrors.ErrAlreadyRejected
	}

	video.Status = entities.PaymentStatusRejected
	video.RejectionReason = reason
	if err := uc.Repository.UpdateVideo(ctx, video); err != nil {
		return RejectVideoResult{}, err
	}

	refreshed, err := uc.RefreshCreator.Execute(ctx, RefreshCreatorCommand{Name: video.CreatorName})
	if err != nil {
		return RejectVideoResult{}, err
	}

	logger.Info("video rejected",
		"event", "video_rejected",
		"module", "creator-payouts/payout-ledger-service",
		"layer", "application",
		"video_id", video.VideoID,
		"creator_name", video.CreatorName,
		"reason", reason,
		"actor_id", strings.TrimSpace(cmd.ActorID),
	)
	return RejectVideoResult{Video: video, Creator: refreshed.Profile}, nil
}
