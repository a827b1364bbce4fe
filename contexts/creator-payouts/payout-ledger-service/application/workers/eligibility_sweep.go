package workers

import (
	"context"
	"log/slog"
	"time"

	application "payline/contexts/creator-payouts/payout-ledger-service/application"
	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"
)

// EligibilitySweepJob promotes pending records whose posting delay has
// elapsed and whose views meet the floor. It applies the same transition
// rule as request-driven view updates, so running both concurrently is
// harmless: promoting an already-eligible record is a no-op.
type EligibilitySweepJob struct {
	Repository ports.Repository
	Clock      ports.Clock
	BatchSize  int
	Disabled   bool
	Logger     *slog.Logger
}

func (j EligibilitySweepJob) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(j.Logger)
	if j.Disabled {
		logger.Info("eligibility sweep disabled by feature flag",
			"event", "eligibility_sweep_disabled",
			"module", "creator-payouts/payout-ledger-service",
			"layer", "worker",
		)
		return nil
	}
	now := time.Now().UTC()
	if j.Clock != nil {
		now = j.Clock.Now().UTC()
	}
	limit := j.BatchSize
	if limit <= 0 {
		limit = 100
	}

	due, err := j.Repository.ListPendingDue(ctx, now, limit)
	if err != nil {
		logger.Error("eligibility sweep list failed",
			"event", "eligibility_sweep_list_failed",
			"module", "creator-payouts/payout-ledger-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	promoted := 0
	for _, video := range due {
		if video.Status != entities.PaymentStatusPending || !video.QualifiesForPayout(now) {
			continue
		}
		video.Status = entities.PaymentStatusEligible
		if err := j.Repository.UpdateVideo(ctx, video); err != nil {
			logger.Error("eligibility sweep update failed",
				"event", "eligibility_sweep_update_failed",
				"module", "creator-payouts/payout-ledger-service",
				"layer", "worker",
				"video_id", video.VideoID,
				"error", err.Error(),
			)
			return err
		}
		promoted++
	}

	if promoted > 0 {
		logger.Info("eligibility sweep cycle completed",
			"event", "eligibility_sweep_completed",
			"module", "creator-payouts/payout-ledger-service",
			"layer", "worker",
			"promoted_count", promoted,
		)
	}
	return nil
}
