package entities

import (
	"strings"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusEligible PaymentStatus = "eligible"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRejected PaymentStatus = "rejected"
)

func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	switch PaymentStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case PaymentStatusPending:
		return PaymentStatusPending, true
	case PaymentStatusEligible:
		return PaymentStatusEligible, true
	case PaymentStatusPaid:
		return PaymentStatusPaid, true
	case PaymentStatusRejected:
		return PaymentStatusRejected, true
	default:
		return "", false
	}
}

// EligibilityDelay is the fixed wait after posting before a qualifying
// video may become payable.
const EligibilityDelay = 48 * time.Hour

const (
	HistoryNoteInitial = "Initial submission"
	HistoryNoteUpdated = "Updated"
)

// ViewHistoryEntry is one observation of a video's view count. History is
// append-only; entry 0 is always the initial submission.
type ViewHistoryEntry struct {
	Views      int64
	RecordedAt time.Time
	Note       string
}

type VideoRecord struct {
	VideoID         string
	URL             string
	CreatorName     string
	ViewCount       int64
	ViewHistory     []ViewHistoryEntry
	DatePosted      time.Time
	DateEligible    time.Time
	DateSubmitted   time.Time
	BasePayment     int64
	BonusAmount     int64
	TotalPayment    int64
	Status          PaymentStatus
	RejectionReason string
	DatePaid        *time.Time
}

func (v VideoRecord) ValidateCreate() bool {
	return strings.TrimSpace(v.VideoID) != "" &&
		strings.TrimSpace(v.URL) != "" &&
		strings.TrimSpace(v.CreatorName) != "" &&
		v.ViewCount >= 0 &&
		!v.DatePosted.IsZero()
}

// QualifiesForPayout is the single transition rule shared by creation,
// view updates and the periodic sweep: the posting delay has elapsed and
// the view floor is met.
func (v VideoRecord) QualifiesForPayout(now time.Time) bool {
	return !now.Before(v.DateEligible) && v.ViewCount >= EligibilityFloorViews
}

// TimeUntilEligible is the remaining wait before the posting delay
// elapses, clamped at zero.
func (v VideoRecord) TimeUntilEligible(now time.Time) time.Duration {
	remaining := v.DateEligible.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (v VideoRecord) IsTerminal() bool {
	return v.Status == PaymentStatusPaid || v.Status == PaymentStatusRejected
}

// NormalizeCreatorName produces the case-insensitive key under which a
// creator's records are grouped.
func NormalizeCreatorName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
