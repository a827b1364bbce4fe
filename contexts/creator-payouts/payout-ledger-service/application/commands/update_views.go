package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "payline/contexts/creator-payouts/payout-ledger-service/application"
	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	"payline/contexts/creator-payouts/payout-ledger-service/domain/services"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"
)

type UpdateViewsCommand struct {
	VideoID string
	Views   int64
}

type UpdateViewsResult struct {
	Video   entities.VideoRecord
	Creator entities.CreatorProfile
	// Warnings flag suspicious observations (drops, extreme jumps). The
	// update still applies; review is a human call.
	Warnings []string
}

// UpdateViewsUseCase appends a view observation to a live record and
// reprices it with the creator's current rank. The rank is derived with
// the new count applied, so a large update can promote the creator and
// reprice this record under the higher rank in the same call. Sibling
// records are never touched.
type UpdateViewsUseCase struct {
	Repository     ports.Repository
	RefreshCreator RefreshCreatorUseCase
	Schedule       entities.RankSchedule
	Clock          ports.Clock
	Logger         *slog.Logger
}

func (uc UpdateViewsUseCase) Execute(ctx context.Context, cmd UpdateViewsCommand) (UpdateViewsResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	videoID := strings.TrimSpace(cmd.VideoID)
	if videoID == "" || cmd.Views < 0 {
		return UpdateViewsResult{}, domainerrors.ErrInvalidVideoInput
	}

	video, err := uc.Repository.GetVideo(ctx, videoID)
	if err != nil {
		return UpdateViewsResult{}, err
	}
	if video.Status == entities.PaymentStatusPaid {
		return UpdateViewsResult{}, alreadyPaidError(video)
	}
	if video.Status == entities.PaymentStatusRejected {
		return UpdateViewsResult{}, domainerrors.ErrAlreadyRejected
	}

	warnings := suspiciousViewChange(video.ViewCount, cmd.Views)

	aggregate, err := uc.Repository.AggregateCreator(ctx, video.CreatorName)
	if err != nil {
		return UpdateViewsResult{}, err
	}
	adjustedLifetime := aggregate.LifetimeViews - video.ViewCount + cmd.Views
	rank := uc.Schedule.DetermineRank(adjustedLifetime)
	spec, ok := uc.Schedule.SpecFor(rank)
	if !ok {
		return UpdateViewsResult{}, domainerrors.ErrUnknownRank
	}
	calc := services.CalculatePayment(cmd.Views, spec)

	now := uc.Clock.Now().UTC()
	video.ViewCount = cmd.Views
	video.BasePayment = calc.BasePayment
	video.BonusAmount = calc.BonusAmount
	video.TotalPayment = calc.TotalPayment
	if video.Status == entities.PaymentStatusPending && video.QualifiesForPayout(now) {
		video.Status = entities.PaymentStatusEligible
	}
	entry := entities.ViewHistoryEntry{Views: cmd.Views, RecordedAt: now, Note: entities.HistoryNoteUpdated}
	video.ViewHistory = append(video.ViewHistory, entry)

	if err := uc.Repository.UpdateVideo(ctx, video, entry); err != nil {
		return UpdateViewsResult{}, err
	}

	refreshed, err := uc.RefreshCreator.Execute(ctx, RefreshCreatorCommand{Name: video.CreatorName})
	if err != nil {
		return UpdateViewsResult{}, err
	}

	logger.Info("video views updated",
		"event", "video_views_updated",
		"module", "creator-payouts/payout-ledger-service",
		"layer", "application",
		"video_id", video.VideoID,
		"creator_name", video.CreatorName,
		"view_count", video.ViewCount,
		"status", string(video.Status),
		"total_payment", video.TotalPayment,
		"warning_count", len(warnings),
	)
	return UpdateViewsResult{Video: video, Creator: refreshed.Profile, Warnings: warnings}, nil
}

func suspiciousViewChange(previous int64, next int64) []string {
	var warnings []string
	if next < previous {
		warnings = append(warnings, fmt.Sprintf("view count decreased from %d to %d", previous, next))
	}
	if next > previous*10 && next-previous >= 100000 {
		warnings = append(warnings, fmt.Sprintf("view count grew more than tenfold, from %d to %d", previous, next))
	}
	return warnings
}

func alreadyPaidError(video entities.VideoRecord) error {
	if video.DatePaid != nil {
		return fmt.Errorf("%w, paid on %s", domainerrors.ErrAlreadyPaid, video.DatePaid.UTC().Format(time.DateOnly))
	}
	return domainerrors.ErrAlreadyPaid
}
