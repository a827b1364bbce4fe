package queries

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"time"

	application "payline/contexts/creator-payouts/payout-ledger-service/application"
	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"
)

type WeeklyReportRow struct {
	CreatorName  string
	VideoCount   int
	TotalViews   int64
	TotalPayment int64
}

type WeeklyReport struct {
	From time.Time
	To   time.Time
	Rows []WeeklyReportRow
}

type ReportsUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc ReportsUseCase) Stats(ctx context.Context) (ports.StatsAggregate, error) {
	return uc.Repository.AggregateStats(ctx)
}

// WeeklyReport groups the trailing seven days of submissions by creator,
// largest payout first.
func (uc ReportsUseCase) WeeklyReport(ctx context.Context) (WeeklyReport, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()
	from := now.Add(-7 * 24 * time.Hour)

	videos, err := uc.Repository.ListVideosSubmittedSince(ctx, from)
	if err != nil {
		return WeeklyReport{}, err
	}

	byCreator := make(map[string]*WeeklyReportRow)
	for _, video := range videos {
		row, exists := byCreator[video.CreatorName]
		if !exists {
			row = &WeeklyReportRow{CreatorName: video.CreatorName}
			byCreator[video.CreatorName] = row
		}
		row.VideoCount++
		row.TotalViews += video.ViewCount
		if video.Status != entities.PaymentStatusRejected {
			row.TotalPayment += video.TotalPayment
		}
	}

	report := WeeklyReport{From: from, To: now, Rows: make([]WeeklyReportRow, 0, len(byCreator))}
	for _, row := range byCreator {
		report.Rows = append(report.Rows, *row)
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		if report.Rows[i].TotalPayment == report.Rows[j].TotalPayment {
			return report.Rows[i].CreatorName < report.Rows[j].CreatorName
		}
		return report.Rows[i].TotalPayment > report.Rows[j].TotalPayment
	})

	logger.Debug("weekly report built",
		"event", "weekly_report_built",
		"module", "creator-payouts/payout-ledger-service",
		"layer", "application",
		"video_count", len(videos),
		"creator_count", len(report.Rows),
	)
	return report, nil
}

// ExportCSVRows renders every record as CSV rows, header first, newest
// submission first.
func (uc ReportsUseCase) ExportCSVRows(ctx context.Context) ([][]string, error) {
	videos, err := uc.Repository.ListVideos(ctx, ports.VideoFilter{})
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(videos)+1)
	rows = append(rows, []string{
		"video_id", "creator", "url", "views", "status",
		"base_payment", "bonus_amount", "total_payment",
		"date_posted", "date_eligible", "date_submitted", "date_paid",
	})
	for _, video := range videos {
		paidAt := ""
		if video.DatePaid != nil {
			paidAt = video.DatePaid.UTC().Format(time.RFC3339)
		}
		rows = append(rows, []string{
			video.VideoID,
			video.CreatorName,
			video.URL,
			strconv.FormatInt(video.ViewCount, 10),
			string(video.Status),
			strconv.FormatInt(video.BasePayment, 10),
			strconv.FormatInt(video.BonusAmount, 10),
			strconv.FormatInt(video.TotalPayment, 10),
			video.DatePosted.UTC().Format(time.RFC3339),
			video.DateEligible.UTC().Format(time.RFC3339),
			video.DateSubmitted.UTC().Format(time.RFC3339),
			paidAt,
		})
	}
	return rows, nil
}
