package http

import (
	"errors"
	"strconv"
	"strings"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SubmitVideoRequest struct {
	URL         string `json:"url"`
	CreatorName string `json:"creator_name"`
	// ViewCount and DatePosted are optional; missing values are filled from
	// the platform metadata lookup. ViewCount accepts K/M/B suffixes.
	ViewCount  string `json:"view_count"`
	DatePosted string `json:"date_posted"`
}

type UpdateViewsRequest struct {
	ViewCount string `json:"view_count"`
}

type ListVideosRequest struct {
	Status      string
	CreatorName string
	Limit       int
}

type QuoteRequest struct {
	Views string
	Rank  string
}

type RejectVideoRequest struct {
	Reason string `json:"reason"`
}

type LinkIdentityRequest struct {
	ExternalUserID string `json:"external_user_id"`
}

type ViewHistoryEntryDTO struct {
	Views      int64  `json:"views"`
	RecordedAt string `json:"recorded_at"`
	Note       string `json:"note"`
}

type VideoDTO struct {
	VideoID            string  `json:"video_id"`
	URL                string  `json:"url"`
	CreatorName        string  `json:"creator_name"`
	ViewCount          int64   `json:"view_count"`
	DatePosted         string  `json:"date_posted"`
	DateEligible       string  `json:"date_eligible"`
	DateSubmitted      string  `json:"date_submitted"`
	BasePayment        int64   `json:"base_payment"`
	BonusAmount        int64   `json:"bonus_amount"`
	TotalPayment       int64   `json:"total_payment"`
	Status             string  `json:"status"`
	RejectionReason    string  `json:"rejection_reason,omitempty"`
	DatePaid           string  `json:"date_paid,omitempty"`
	HoursUntilEligible float64 `json:"hours_until_eligible"`
}

type CreatorDTO struct {
	Name           string `json:"name"`
	ExternalUserID string `json:"external_user_id,omitempty"`
	LifetimeViews  int64  `json:"lifetime_views"`
	CurrentRank    string `json:"current_rank"`
	VideoCount     int    `json:"video_count"`
	TotalPaid      int64  `json:"total_paid"`
	UnpaidAmount   int64  `json:"unpaid_amount"`
	NextRank       string `json:"next_rank,omitempty"`
	ViewsToNext    int64  `json:"views_to_next_rank"`
	AtMaxRank      bool   `json:"at_max_rank"`
}

type SubmitVideoResponse struct {
	Video    VideoDTO   `json:"video"`
	Creator  CreatorDTO `json:"creator"`
	Replayed bool       `json:"replayed"`
}

type GetVideoResponse struct {
	Video VideoDTO `json:"video"`
}

type ListVideosResponse struct {
	Items []VideoDTO `json:"items"`
}

type ViewHistoryResponse struct {
	VideoID string                `json:"video_id"`
	Entries []ViewHistoryEntryDTO `json:"entries"`
}

type UpdateViewsResponse struct {
	Video    VideoDTO   `json:"video"`
	Creator  CreatorDTO `json:"creator"`
	Warnings []string   `json:"warnings,omitempty"`
}

type MarkPaidResponse struct {
	Video VideoDTO `json:"video"`
}

type RejectVideoResponse struct {
	Video VideoDTO `json:"video"`
}

type GetCreatorResponse struct {
	Creator CreatorDTO `json:"creator"`
}

type ListCreatorsResponse struct {
	Items []CreatorDTO `json:"items"`
}

type RateCardTierDTO struct {
	ViewThreshold int64 `json:"view_threshold"`
	Amount        int64 `json:"amount"`
	RunningTotal  int64 `json:"running_total"`
}

type RateCardEntryDTO struct {
	Rank             string            `json:"rank"`
	MinLifetimeViews int64             `json:"min_lifetime_views"`
	PerVideoCap      int64             `json:"per_video_cap"`
	Tiers            []RateCardTierDTO `json:"tiers"`
}

type RateCardResponse struct {
	Ranks []RateCardEntryDTO `json:"ranks"`
}

type QuoteResponse struct {
	Rank         string `json:"rank"`
	Views        int64  `json:"views"`
	Eligible     bool   `json:"eligible"`
	BasePayment  int64  `json:"base_payment"`
	BonusAmount  int64  `json:"bonus_amount"`
	TotalPayment int64  `json:"total_payment"`
	PerVideoCap  int64  `json:"per_video_cap"`
}

type StatsResponse struct {
	TotalVideos    int   `json:"total_videos"`
	PendingCount   int   `json:"pending_count"`
	EligibleCount  int   `json:"eligible_count"`
	PaidCount      int   `json:"paid_count"`
	RejectedCount  int   `json:"rejected_count"`
	TotalOwed      int64 `json:"total_owed"`
	TotalPaidOut   int64 `json:"total_paid_out"`
	UniqueCreators int   `json:"unique_creators"`
}

type WeeklyReportRowDTO struct {
	CreatorName  string `json:"creator_name"`
	VideoCount   int    `json:"video_count"`
	TotalViews   int64  `json:"total_views"`
	TotalPayment int64  `json:"total_payment"`
}

type WeeklyReportResponse struct {
	From string               `json:"from"`
	To   string               `json:"to"`
	Rows []WeeklyReportRowDTO `json:"rows"`
}

var errBadViewCount = errors.New("view count must be a number with an optional K/M/B suffix")

// ParseViewCount reads the human view-count forms the tracker accepts:
// plain digits, digits with thousands separators, and K/M/B suffixed
// decimals ("12.5K" is 12500). The core only ever sees the integer.
func ParseViewCount(raw string) (int64, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, errBadViewCount
	}

	multiplier := float64(1)
	switch cleaned[len(cleaned)-1] {
	case 'K':
		multiplier = 1_000
		cleaned = cleaned[:len(cleaned)-1]
	case 'M':
		multiplier = 1_000_000
		cleaned = cleaned[:len(cleaned)-1]
	case 'B':
		multiplier = 1_000_000_000
		cleaned = cleaned[:len(cleaned)-1]
	}

	if multiplier == 1 {
		value, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil || value < 0 {
			return 0, errBadViewCount
		}
		return value, nil
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value < 0 {
		return 0, errBadViewCount
	}
	return int64(value * multiplier), nil
}
