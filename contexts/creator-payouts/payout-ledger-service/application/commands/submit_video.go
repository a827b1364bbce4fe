package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	application "payline/contexts/creator-payouts/payout-ledger-service/application"
	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	"payline/contexts/creator-payouts/payout-ledger-service/domain/services"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"
)

type SubmitVideoCommand struct {
	URL         string
	CreatorName string
	// ViewCount and DatePosted may be left nil to have the content lookup
	// collaborator fill them from the platform.
	ViewCount  *int64
	DatePosted *time.Time
}

type SubmitVideoResult struct {
	Video    entities.VideoRecord
	Creator  entities.CreatorProfile
	Replayed bool
}

type SubmitVideoUseCase struct {
	Repository     ports.Repository
	Idempotency    ports.IdempotencyStore
	ContentSource  ports.ContentSource
	RefreshCreator RefreshCreatorUseCase
	Schedule       entities.RankSchedule
	Clock          ports.Clock
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func (uc SubmitVideoUseCase) Execute(ctx context.Context, idempotencyKey string, cmd SubmitVideoCommand) (SubmitVideoResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	idempotencyKey = strings.TrimSpace(idempotencyKey)
	requestHash := hashSubmitRequest(cmd)
	if idempotencyKey != "" && uc.Idempotency != nil {
		record, found, err := uc.Idempotency.GetRecord(ctx, idempotencyKey, now)
		if err != nil {
			return SubmitVideoResult{}, err
		}
		if found {
			if record.RequestHash != requestHash {
				return SubmitVideoResult{}, domainerrors.ErrIdempotencyKeyConflict
			}
			var video entities.VideoRecord
			if err := json.Unmarshal(record.ResponsePayload, &video); err != nil {
				return SubmitVideoResult{}, err
			}
			return SubmitVideoResult{Video: video, Replayed: true}, nil
		}
	}

	ref, err := parseVideoReference(cmd.URL)
	if err != nil {
		return SubmitVideoResult{}, err
	}

	creatorName := entities.NormalizeCreatorName(cmd.CreatorName)
	views := cmd.ViewCount
	datePosted := cmd.DatePosted
	if (creatorName == "" || views == nil || datePosted == nil) && uc.ContentSource != nil {
		metadata, err := uc.ContentSource.Lookup(ctx, ref.CanonicalURL)
		if err != nil {
			return SubmitVideoResult{}, err
		}
		if views == nil {
			views = metadata.Views
		}
		if datePosted == nil {
			datePosted = metadata.DatePosted
		}
		if creatorName == "" {
			creatorName = entities.NormalizeCreatorName(metadata.Username)
		}
	}
	if creatorName == "" && ref.UsernameHint != "" {
		creatorName = entities.NormalizeCreatorName(ref.UsernameHint)
	}
	if creatorName == "" || views == nil || *views < 0 || datePosted == nil {
		return SubmitVideoResult{}, domainerrors.ErrInvalidVideoInput
	}

	profile, err := uc.RefreshCreator.Execute(ctx, RefreshCreatorCommand{Name: creatorName})
	if err != nil {
		return SubmitVideoResult{}, err
	}
	spec, ok := uc.Schedule.SpecFor(profile.Profile.CurrentRank)
	if !ok {
		return SubmitVideoResult{}, domainerrors.ErrUnknownRank
	}
	calc := services.CalculatePayment(*views, spec)

	video := entities.VideoRecord{
		VideoID:       ref.VideoID,
		URL:           ref.CanonicalURL,
		CreatorName:   creatorName,
		ViewCount:     *views,
		DatePosted:    datePosted.UTC(),
		DateEligible:  datePosted.UTC().Add(entities.EligibilityDelay),
		DateSubmitted: now,
		BasePayment:   calc.BasePayment,
		BonusAmount:   calc.BonusAmount,
		TotalPayment:  calc.TotalPayment,
		Status:        entities.PaymentStatusPending,
		ViewHistory: []entities.ViewHistoryEntry{
			{Views: *views, RecordedAt: now, Note: entities.HistoryNoteInitial},
		},
	}
	if video.QualifiesForPayout(now) {
		video.Status = entities.PaymentStatusEligible
	}
	if !video.ValidateCreate() {
		return SubmitVideoResult{}, domainerrors.ErrInvalidVideoInput
	}

	if err := uc.Repository.CreateVideo(ctx, video); err != nil {
		return SubmitVideoResult{}, err
	}

	refreshed, err := uc.RefreshCreator.Execute(ctx, RefreshCreatorCommand{Name: creatorName})
	if err != nil {
		return SubmitVideoResult{}, err
	}

	if idempotencyKey != "" && uc.Idempotency != nil {
		payload, err := json.Marshal(video)
		if err != nil {
			return SubmitVideoResult{}, err
		}
		ttl := uc.IdempotencyTTL
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		if err := uc.Idempotency.PutRecord(ctx, ports.IdempotencyRecord{
			Key:             idempotencyKey,
			RequestHash:     requestHash,
			ResponsePayload: payload,
			ExpiresAt:       now.Add(ttl),
		}); err != nil {
			return SubmitVideoResult{}, err
		}
	}

	logger.Info("video submitted",
		"event", "video_submitted",
		"module", "creator-payouts/payout-ledger-service",
		"layer", "application",
		"video_id", video.VideoID,
		"creator_name", video.CreatorName,
		"view_count", video.ViewCount,
		"status", string(video.Status),
		"total_payment", video.TotalPayment,
	)
	return SubmitVideoResult{Video: video, Creator: refreshed.Profile}, nil
}

func hashSubmitRequest(cmd SubmitVideoCommand) string {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
