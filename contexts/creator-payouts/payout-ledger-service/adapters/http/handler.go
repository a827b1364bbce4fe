package httpadapter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	application "payline/contexts/creator-payouts/payout-ledger-service/application"
	"payline/contexts/creator-payouts/payout-ledger-service/application/commands"
	"payline/contexts/creator-payouts/payout-ledger-service/application/queries"
	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"
	httptransport "payline/contexts/creator-payouts/payout-ledger-service/transport/http"
)

type Handler struct {
	SubmitVideo    commands.SubmitVideoUseCase
	UpdateViews    commands.UpdateViewsUseCase
	MarkPaid       commands.MarkPaidUseCase
	RejectVideo    commands.RejectVideoUseCase
	DeleteVideo    commands.DeleteVideoUseCase
	LinkIdentity   commands.LinkIdentityUseCase
	RefreshCreator commands.RefreshCreatorUseCase
	Videos         queries.VideoQueriesUseCase
	Creators       queries.CreatorQueriesUseCase
	RateCard       queries.RateCardUseCase
	Reports        queries.ReportsUseCase
	Clock          ports.Clock
	Logger         *slog.Logger
}

// SubmitVideoHandler godoc
// @Summary Submit a video for payout tracking
// @Description Registers a short-video URL, prices it under the creator's current rank and opens the 48h eligibility window.
// @Tags payout-ledger
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotent retry key"
// @Param request body httptransport.SubmitVideoRequest true "Submission"
// @Success 201 {object} httptransport.SubmitVideoResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 424 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payouts/videos [post]
func (h Handler) SubmitVideoHandler(
	ctx context.Context,
	idempotencyKey string,
	req httptransport.SubmitVideoRequest,
) (httptransport.SubmitVideoResponse, error) {
	logger := application.ResolveLogger(h.Logger)

	cmd := commands.SubmitVideoCommand{
		URL:         req.URL,
		CreatorName: req.CreatorName,
	}
	if req.ViewCount != "" {
		views, err := httptransport.ParseViewCount(req.ViewCount)
		if err != nil {
			return httptransport.SubmitVideoResponse{}, fmt.Errorf("%w: %v", domainerrors.ErrInvalidVideoInput, err)
		}
		cmd.ViewCount = &views
	}
	if req.DatePosted != "" {
		postedAt, err := time.Parse(time.RFC3339, req.DatePosted)
		if err != nil {
			return httptransport.SubmitVideoResponse{}, fmt.Errorf("%w: date_posted must be RFC3339", domainerrors.ErrInvalidVideoInput)
		}
		cmd.DatePosted = &postedAt
	}

	result, err := h.SubmitVideo.Execute(ctx, idempotencyKey, cmd)
	if err != nil {
		logger.Error("submit video request failed",
			"event", "http_submit_video_failed",
			"module", "creator-payouts/payout-ledger-service",
			"layer", "transport",
			"error", err.Error(),
		)
		return httptransport.SubmitVideoResponse{}, err
	}
	return httptransport.SubmitVideoResponse{
		Video:    h.mapVideo(result.Video),
		Creator:  h.mapCreator(result.Creator),
		Replayed: result.Replayed,
	}, nil
}

// ListVideosHandler godoc
// @Summary List tracked videos
// @Description Lists records filtered by status and creator. Pending sorts by eligibility time, eligible by amount owed.
// @Tags payout-ledger
// @Produce json
// @Param status query string false "Status filter: pending,eligible,paid,rejected"
// @Param creator query string false "Creator name filter"
// @Param limit query int false "Page size (default 50, max 100)"
// @Success 200 {object} httptransport.ListVideosResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payouts/videos [get]
func (h Handler) ListVideosHandler(ctx context.Context, req httptransport.ListVideosRequest) (httptransport.ListVideosResponse, error) {
	items, err := h.Videos.ListVideos(ctx, queries.ListVideosQuery{
		Status:      req.Status,
		CreatorName: req.CreatorName,
		Limit:       req.Limit,
	})
	if err != nil {
		return httptransport.ListVideosResponse{}, err
	}
	resp := httptransport.ListVideosResponse{Items: make([]httptransport.VideoDTO, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, h.mapVideo(item))
	}
	return resp, nil
}

// GetVideoHandler godoc
// @Summary Get one video
// @Tags payout-ledger
// @Produce json
// @Param video_id path string true "External video id"
// @Success 200 {object} httptransport.GetVideoResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payouts/videos/{video_id} [get]
func (h Handler) GetVideoHandler(ctx context.Context, videoID string) (httptransport.GetVideoResponse, error) {
	video, err := h.Videos.GetVideo(ctx, videoID)
	if err != nil {
		return httptransport.GetVideoResponse{}, err
	}
	return httptransport.GetVideoResponse{Video: h.mapVideo(video)}, nil
}

// ViewHistoryHandler godoc
// @Summary Get a video's view history
// @Description Returns the append-only view observations, oldest first.
// @Tags payout-ledger
// @Produce json
// @Param video_id path string true "External video id"
// @Success 200 {object} httptransport.ViewHistoryResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payouts/videos/{video_id}/history [get]
func (h Handler) ViewHistoryHandler(ctx context.Context, videoID string) (httptransport.ViewHistoryResponse, error) {
	entries, err := h.Videos.ViewHistory(ctx, videoID)
	if err != nil {
		return httptransport.ViewHistoryResponse{}, err
	}
	resp := httptransport.ViewHistoryResponse{
		VideoID: videoID,
		Entries: make([]httptransport.ViewHistoryEntryDTO, 0, len(entries)),
	}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, httptransport.ViewHistoryEntryDTO{
			Views:      entry.Views,
			RecordedAt: entry.RecordedAt.UTC().Format(time.RFC3339),
			Note:       entry.Note,
		})
	}
	return resp, nil
}

// UpdateViewsHandler godoc
// @Summary Update a video's view count
// @Description Appends a view observation and reprices the record under the creator's current rank. Suspicious changes come back as warnings.
// @Tags payout-ledger
// @Accept json
// @Produce json
// @Param video_id path string true "External video id"
// @Param request body httptransport.UpdateViewsRequest true "New view count (K/M/B suffixes accepted)"
// @Success 200 {object} httptransport.UpdateViewsResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payouts/videos/{video_id}/views [post]
func (h Handler) UpdateViewsHandler(
	ctx context.Context,
	videoID string,
	req httptransport.UpdateViewsRequest,
) (httptransport.UpdateViewsResponse, error) {
	views, err := httptransport.ParseViewCount(req.ViewCount)
	if err != nil {
		return httptransport.UpdateViewsResponse{}, fmt.Errorf("%w: %v", domainerrors.ErrInvalidVideoInput, err)
	}
	result, err := h.UpdateViews.Execute(ctx, commands.UpdateViewsCommand{VideoID: videoID, Views: views})
	if err != nil {
		return httptransport.UpdateViewsResponse{}, err
	}
	return httptransport.UpdateViewsResponse{
		Video:    h.mapVideo(result.Video),
		Creator:  h.mapCreator(result.Creator),
		Warnings: result.Warnings,
	}, nil
}

// MarkPaidHandler godoc
// @Summary Mark a video paid
// @Description Stamps the payment date. Paid is terminal; a repeat call reports the original date.
// @Tags payout-ledger
// @Produce json
// @Param X-User-Id header string true "Operator id"
// @Param video_id path string true "External video id"
// @Success 200 {object} httptransport.MarkPaidResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payouts/videos/{video_id}/payment [post]
func (h Handler) MarkPaidHandler(ctx context.Context, videoID string, actorID string) (httptransport.MarkPaidResponse, error) {
	video, err := h.MarkPaid.Execute(ctx, commands.MarkPaidCommand{VideoID: videoID, ActorID: actorID})
	if err != nil {
		return httptransport.MarkPaidResponse{}, err
	}
	return httptransport.MarkPaidResponse{Video: h.mapVideo(video)}, nil
}

// RejectVideoHandler godoc
// @Summary Reject a video
// @Description Excludes a record from payouts and creator aggregates. The reason is mandatory.
// @Tags payout-ledger
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Operator id"
// @Param video_id path string true "External video id"
// @Param request body httptransport.RejectVideoRequest true "Rejection reason"
// @Success 200 {object} httptransport.RejectVideoResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payouts/videos/{video_id}/rejection [post]
func (h Handler) RejectVideoHandler(
	ctx context.Context,
	videoID string,
	actorID string,
	req httptransport.RejectVideoRequest,
) (httptransport.RejectVideoResponse, error) {
	result, err := h.RejectVideo.Execute(ctx, commands.RejectVideoCommand{
		VideoID: videoID,
		Reason:  req.Reason,
		ActorID: actorID,
	})
	if err != nil {
		return httptransport.RejectVideoResponse{}, err
	}
	return httptransport.RejectVideoResponse{Video: h.mapVideo(result.Video)}, nil
}

// DeleteVideoHandler godoc
// @Summary Delete a video
// @Description Removes a record and its history, then recomputes the creator's aggregates.
// @Tags payout-ledger
// @Param video_id path string true "External video id"
// @Success 204
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payouts/videos/{video_id} [delete]
func (h Handler) DeleteVideoHandler(ctx context.Context, videoID string) error {
	return h.DeleteVideo.Execute(ctx, commands.DeleteVideoCommand{VideoID: videoID})
}

// ListCreatorsHandler godoc
// @Summary List creators with ranks
// @Description Returns every known creator with live aggregates, highest lifetime views first.
// @Tags payout-ledger
// @Produce json
// @Success 200 {object} httptransport.ListCreatorsResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payouts/creators [get]
func (h Handler) ListCreatorsHandler(ctx context.Context) (httptransport.ListCreatorsResponse, error) {
	profiles, err := h.Creators.ListCreatorsWithRanks(ctx)
	if err != nil {
		return httptransport.ListCreatorsResponse{}, err
	}
	resp := httptransport.ListCreatorsResponse{Items: make([]httptransport.CreatorDTO, 0, len(profiles))}
	for _, profile := range profiles {
		resp.Items = append(resp.Items, h.mapCreator(profile))
	}
	return resp, nil
}

// GetCreatorHandler godoc
// @Summary Get or create a creator profile
// @Description Recomputes the creator's aggregates from live records and returns the profile with rank progress.
// @Tags payout-ledger
// @Produce json
// @Param name path string true "Creator name (case-insensitive)"
// @Success 200 {object} httptransport.GetCreatorResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payouts/creators/{name} [get]
func (h Handler) GetCreatorHandler(ctx context.Context, name string) (httptransport.GetCreatorResponse, error) {
	result, err := h.RefreshCreator.Execute(ctx, commands.RefreshCreatorCommand{Name: name})
	if err != nil {
		return httptransport.GetCreatorResponse{}, err
	}
	return httptransport.GetCreatorResponse{Creator: h.mapCreator(result.Profile)}, nil
}

// LinkIdentityHandler godoc
// @Summary Link a creator to a platform user
// @Description Attaches the community-side user id used in rank promotion events.
// @Tags payout-ledger
// @Accept json
// @Produce json
// @Param name path string true "Creator name (case-insensitive)"
// @Param request body httptransport.LinkIdentityRequest true "External identity"
// @Success 200 {object} httptransport.GetCreatorResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payouts/creators/{name}/identity [put]
func (h Handler) LinkIdentityHandler(
	ctx context.Context,
	name string,
	req httptransport.LinkIdentityRequest,
) (httptransport.GetCreatorResponse, error) {
	profile, err := h.LinkIdentity.Execute(ctx, commands.LinkIdentityCommand{
		Name:           name,
		ExternalUserID: req.ExternalUserID,
	})
	if err != nil {
		return httptransport.GetCreatorResponse{}, err
	}
	return httptransport.GetCreatorResponse{Creator: h.mapCreator(profile)}, nil
}

// RateCardHandler godoc
// @Summary Get the full payout rate card
// @Description Returns every rank with unlock threshold, per-video cap and bonus tiers with running totals.
// @Tags payout-ledger
// @Produce json
// @Success 200 {object} httptransport.RateCardResponse
// @Router /payouts/rate-card [get]
func (h Handler) RateCardHandler(_ context.Context) (httptransport.RateCardResponse, error) {
	entries := h.RateCard.Ladder()
	resp := httptransport.RateCardResponse{Ranks: make([]httptransport.RateCardEntryDTO, 0, len(entries))}
	for _, entry := range entries {
		dto := httptransport.RateCardEntryDTO{
			Rank:             string(entry.Rank),
			MinLifetimeViews: entry.MinLifetimeViews,
			PerVideoCap:      entry.PerVideoCap,
			Tiers:            make([]httptransport.RateCardTierDTO, 0, len(entry.Tiers)),
		}
		for _, tier := range entry.Tiers {
			dto.Tiers = append(dto.Tiers, httptransport.RateCardTierDTO{
				ViewThreshold: tier.ViewThreshold,
				Amount:        tier.Amount,
				RunningTotal:  tier.RunningTotal,
			})
		}
		resp.Ranks = append(resp.Ranks, dto)
	}
	return resp, nil
}

// QuoteHandler godoc
// @Summary Quote a payout
// @Description Prices a hypothetical view count against a rank. Pure read, nothing is stored.
// @Tags payout-ledger
// @Produce json
// @Param views query string true "View count (K/M/B suffixes accepted)"
// @Param rank query string false "Rank (defaults to the first rank)"
// @Success 200 {object} httptransport.QuoteResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /payouts/rate-card/quote [get]
func (h Handler) QuoteHandler(_ context.Context, req httptransport.QuoteRequest) (httptransport.QuoteResponse, error) {
	views, err := httptransport.ParseViewCount(req.Views)
	if err != nil {
		return httptransport.QuoteResponse{}, fmt.Errorf("%w: %v", domainerrors.ErrInvalidVideoInput, err)
	}
	calc, err := h.RateCard.Quote(views, req.Rank)
	if err != nil {
		return httptransport.QuoteResponse{}, err
	}
	return httptransport.QuoteResponse{
		Rank:         string(calc.Rank),
		Views:        views,
		Eligible:     calc.Eligible,
		BasePayment:  calc.BasePayment,
		BonusAmount:  calc.BonusAmount,
		TotalPayment: calc.TotalPayment,
		PerVideoCap:  calc.PerVideoCap,
	}, nil
}

// StatsHandler godoc
// @Summary Ledger totals
// @Description Returns whole-ledger counts and amounts. Rejected records count but never contribute money.
// @Tags payout-ledger
// @Produce json
// @Success 200 {object} httptransport.StatsResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payouts/stats [get]
func (h Handler) StatsHandler(ctx context.Context) (httptransport.StatsResponse, error) {
	stats, err := h.Reports.Stats(ctx)
	if err != nil {
		return httptransport.StatsResponse{}, err
	}
	return httptransport.StatsResponse{
		TotalVideos:    stats.TotalVideos,
		PendingCount:   stats.PendingCount,
		EligibleCount:  stats.EligibleCount,
		PaidCount:      stats.PaidCount,
		RejectedCount:  stats.RejectedCount,
		TotalOwed:      stats.TotalOwed,
		TotalPaidOut:   stats.TotalPaidOut,
		UniqueCreators: stats.UniqueCreators,
	}, nil
}

// WeeklyReportHandler godoc
// @Summary Trailing-week submissions by creator
// @Tags payout-ledger
// @Produce json
// @Success 200 {object} httptransport.WeeklyReportResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payouts/reports/weekly [get]
func (h Handler) WeeklyReportHandler(ctx context.Context) (httptransport.WeeklyReportResponse, error) {
	report, err := h.Reports.WeeklyReport(ctx)
	if err != nil {
		return httptransport.WeeklyReportResponse{}, err
	}
	resp := httptransport.WeeklyReportResponse{
		From: report.From.UTC().Format(time.RFC3339),
		To:   report.To.UTC().Format(time.RFC3339),
		Rows: make([]httptransport.WeeklyReportRowDTO, 0, len(report.Rows)),
	}
	for _, row := range report.Rows {
		resp.Rows = append(resp.Rows, httptransport.WeeklyReportRowDTO{
			CreatorName:  row.CreatorName,
			VideoCount:   row.VideoCount,
			TotalViews:   row.TotalViews,
			TotalPayment: row.TotalPayment,
		})
	}
	return resp, nil
}

// ExportCSVHandler godoc
// @Summary Export all records as CSV
// @Tags payout-ledger
// @Produce text/csv
// @Success 200 {string} string "CSV payload"
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /payouts/export.csv [get]
func (h Handler) ExportCSVHandler(ctx context.Context) ([][]string, error) {
	return h.Reports.ExportCSVRows(ctx)
}

func (h Handler) mapVideo(video entities.VideoRecord) httptransport.VideoDTO {
	dto := httptransport.VideoDTO{
		VideoID:         video.VideoID,
		URL:             video.URL,
		CreatorName:     video.CreatorName,
		ViewCount:       video.ViewCount,
		DatePosted:      video.DatePosted.UTC().Format(time.RFC3339),
		DateEligible:    video.DateEligible.UTC().Format(time.RFC3339),
		DateSubmitted:   video.DateSubmitted.UTC().Format(time.RFC3339),
		BasePayment:     video.BasePayment,
		BonusAmount:     video.BonusAmount,
		TotalPayment:    video.TotalPayment,
		Status:          string(video.Status),
		RejectionReason: video.RejectionReason,
	}
	if video.DatePaid != nil {
		dto.DatePaid = video.DatePaid.UTC().Format(time.RFC3339)
	}
	if video.Status == entities.PaymentStatusPending && h.Clock != nil {
		dto.HoursUntilEligible = video.TimeUntilEligible(h.Clock.Now()).Hours()
	}
	return dto
}

func (h Handler) mapCreator(profile entities.CreatorProfile) httptransport.CreatorDTO {
	dto := httptransport.CreatorDTO{
		Name:           profile.Name,
		ExternalUserID: profile.ExternalUserID,
		LifetimeViews:  profile.LifetimeViews,
		CurrentRank:    string(profile.CurrentRank),
		VideoCount:     profile.VideoCount,
		TotalPaid:      profile.TotalPaid,
		UnpaidAmount:   profile.UnpaidAmount,
	}
	if progress, err := h.RateCard.Progress(profile.LifetimeViews); err == nil {
		dto.NextRank = string(progress.NextRank)
		dto.ViewsToNext = progress.ViewsToNext
		dto.AtMaxRank = progress.AtMaxRank
	}
	return dto
}
