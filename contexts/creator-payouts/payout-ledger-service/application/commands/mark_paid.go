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

type MarkPaidCommand struct {
	VideoID string
	ActorID string
}

// MarkPaidUseCase moves a pending or eligible record to paid and stamps
// the payment date. Paid is terminal: a second attempt fails with an
// already-paid error carrying the original payment date, and the stamp is
// never overwritten.
type MarkPaidUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc MarkPaidUseCase) Execute(ctx context.Context, cmd MarkPaidCommand) (entities.VideoRecord, error) {
	logger := application.ResolveLogger(uc.Logger)
	videoID := strings.TrimSpace(cmd.VideoID)
	if videoID == "" {
		return entities.VideoRecord{}, domainerrors.ErrInvalidVideoInput
	}

	video, err := uc.Repository.GetVideo(ctx, videoID)
	if err != nil {
		return entities.VideoRecord{}, err
	}
	if video.Status == entities.PaymentStatusPaid {
		return entities.VideoRecord{}, alreadyPaidError(video)
	}
	if video.Status == entities.PaymentStatusRejected {
		return entities.VideoRecord{}, domainerrors.ErrAlreadyRejected
	}

	now := uc.Clock.Now().UTC()
	video.Status = entities.PaymentStatusPaid
	video.DatePaid = &now
	if err := uc.Repository.UpdateVideo(ctx, video); err != nil {
		return entities.VideoRecord{}, err
	}

	logger.Info("video marked paid",
		"event", "video_marked_paid",
		"module", "creator-payouts/payout-ledger-service",
		"layer", "application",
		"video_id", video.VideoID,
		"creator_name", video.CreatorName,
		"total_payment", video.TotalPayment,
		"actor_id", strings.TrimSpace(cmd.ActorID),
	)
	return video, nil
}
