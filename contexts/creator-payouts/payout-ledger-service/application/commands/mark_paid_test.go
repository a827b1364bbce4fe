package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
)

func TestMarkPaidStampsPaymentDate(t *testing.T) {
	f := newLedgerFixture()
	video := f.mustSubmit(t, "Ria", "https://www.tiktok.com/@ria/video/7300000000000000201", 25000, testNow.Add(-72*time.Hour))

	paid, err := f.pay.Execute(context.Background(), MarkPaidCommand{VideoID: video.VideoID, ActorID: "ops-1"})
	if err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if paid.Status != entities.PaymentStatusPaid {
		t.Fatalf("expected paid status, got %s", paid.Status)
	}
	if paid.DatePaid == nil || !paid.DatePaid.Equal(testNow) {
		t.Fatalf("expected payment stamped at clock time, got %v", paid.DatePaid)
	}
}

func TestMarkPaidTwiceKeepsOriginalDate(t *testing.T) {
	f := newLedgerFixture()
	video := f.mustSubmit(t, "Ria", "https://www.tiktok.com/@ria/video/7300000000000000202", 25000, testNow.Add(-72*time.Hour))
	if _, err := f.pay.Execute(context.Background(), MarkPaidCommand{VideoID: video.VideoID, ActorID: "ops-1"}); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}

	_, err := f.pay.Execute(context.Background(), MarkPaidCommand{VideoID: video.VideoID, ActorID: "ops-2"})
	if !errors.Is(err, domainerrors.ErrAlreadyPaid) {
		t.Fatalf("expected already paid error, got %v", err)
	}
	if !strings.Contains(err.Error(), "paid on 2026-03-10") {
		t.Fatalf("expected original payment date in the error, got %v", err)
	}
}

func TestMarkPaidAllowsPendingOverride(t *testing.T) {
	f := newLedgerFixture()
	video := f.mustSubmit(t, "Ria", "https://www.tiktok.com/@ria/video/7300000000000000203", 25000, testNow.Add(-time.Hour))
	if video.Status != entities.PaymentStatusPending {
		t.Fatalf("expected pending inside the window, got %s", video.Status)
	}

	paid, err := f.pay.Execute(context.Background(), MarkPaidCommand{VideoID: video.VideoID, ActorID: "ops-1"})
	if err != nil {
		t.Fatalf("manual payout of a pending record failed: %v", err)
	}
	if paid.Status != entities.PaymentStatusPaid {
		t.Fatalf("expected paid status, got %s", paid.Status)
	}
}

func TestMarkPaidRejectedFails(t *testing.T) {
	f := newLedgerFixture()
	video := f.mustSubmit(t, "Ria", "https://www.tiktok.com/@ria/video/7300000000000000204", 25000, testNow.Add(-72*time.Hour))
	if _, err := f.reject.Execute(context.Background(), RejectVideoCommand{VideoID: video.VideoID, Reason: "duplicate content", ActorID: "ops-1"}); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	_, err := f.pay.Execute(context.Background(), MarkPaidCommand{VideoID: video.VideoID, ActorID: "ops-1"})
	if !errors.Is(err, domainerrors.ErrAlreadyRejected) {
		t.Fatalf("expected already rejected error, got %v", err)
	}
}

func TestMarkPaidUnknownVideo(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.pay.Execute(context.Background(), MarkPaidCommand{VideoID: "missing", ActorID: "ops-1"})
	if !errors.Is(err, domainerrors.ErrVideoNotFound) {
		t.Fatalf("expected video not found, got %v", err)
	}
}
