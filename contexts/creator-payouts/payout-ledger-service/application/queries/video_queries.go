package queries

import (
	"context"
	"log/slog"
	"strings"

	application "payline/contexts/creator-payouts/payout-ledger-service/application"
	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"
)

type ListVideosQuery struct {
	Status      string
	CreatorName string
	Limit       int
}

type VideoQueriesUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (uc VideoQueriesUseCase) GetVideo(ctx context.Context, videoID string) (entities.VideoRecord, error) {
	videoID = strings.TrimSpace(videoID)
	if videoID == "" {
		return entities.VideoRecord{}, domainerrors.ErrInvalidVideoInput
	}
	return uc.Repository.GetVideo(ctx, videoID)
}

func (uc VideoQueriesUseCase) ViewHistory(ctx context.Context, videoID string) ([]entities.ViewHistoryEntry, error) {
	video, err := uc.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	return video.ViewHistory, nil
}

func (uc VideoQueriesUseCase) ListVideos(ctx context.Context, query ListVideosQuery) ([]entities.VideoRecord, error) {
	logger := application.ResolveLogger(uc.Logger)

	filter := ports.VideoFilter{
		CreatorName: entities.NormalizeCreatorName(query.CreatorName),
		Limit:       query.Limit,
	}
	if raw := strings.TrimSpace(query.Status); raw != "" {
		status, ok := entities.ParsePaymentStatus(raw)
		if !ok {
			return nil, domainerrors.ErrInvalidListFilter
		}
		filter.Status = status
	}
	if filter.Limit < 0 {
		return nil, domainerrors.ErrInvalidListFilter
	}
	if filter.Limit == 0 {
		filter.Limit = 50
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}

	items, err := uc.Repository.ListVideos(ctx, filter)
	if err != nil {
		return nil, err
	}

	logger.Debug("video list served",
		"event", "video_list_served",
		"module", "creator-payouts/payout-ledger-service",
		"layer", "application",
		"status", string(filter.Status),
		"creator_name", filter.CreatorName,
		"count", len(items),
	)
	return items, nil
}
