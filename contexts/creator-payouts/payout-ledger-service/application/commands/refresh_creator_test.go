package commands

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	contractsv1 "payline/contracts/gen/events/v1"
)

func seedVideo(t *testing.T, f *ledgerFixture, videoID, creator string, views int64, status entities.PaymentStatus) entities.VideoRecord {
	t.Helper()
	posted := testNow.Add(-72 * time.Hour)
	video := entities.VideoRecord{
		VideoID:       videoID,
		URL:           "https://www.tiktok.com/@" + creator + "/video/" + videoID,
		CreatorName:   creator,
		ViewCount:     views,
		DatePosted:    posted,
		DateEligible:  posted.Add(48 * time.Hour),
		DateSubmitted: testNow,
		Status:        status,
		ViewHistory: []entities.ViewHistoryEntry{
			{Views: views, RecordedAt: testNow, Note: entities.HistoryNoteInitial},
		},
	}
	if err := f.store.CreateVideo(context.Background(), video); err != nil {
		t.Fatalf("seed video %s failed: %v", videoID, err)
	}
	return video
}

func TestRefreshCreatorAggregatesExcludeRejected(t *testing.T) {
	f := newLedgerFixture()
	first := f.mustSubmit(t, "Nova", "https://www.tiktok.com/@nova/video/7300000000000000601", 25000, testNow.Add(-72*time.Hour))
	second := f.mustSubmit(t, "Nova", "https://www.tiktok.com/@nova/video/7300000000000000602", 40000, testNow.Add(-72*time.Hour))
	third := f.mustSubmit(t, "Nova", "https://www.tiktok.com/@nova/video/7300000000000000603", 90000, testNow.Add(-72*time.Hour))

	if _, err := f.pay.Execute(context.Background(), MarkPaidCommand{VideoID: second.VideoID, ActorID: "ops-1"}); err != nil {
		t.Fatalf("mark paid failed: %v", err)
	}
	if _, err := f.reject.Execute(context.Background(), RejectVideoCommand{VideoID: third.VideoID, Reason: "bot traffic", ActorID: "ops-1"}); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	result, err := f.refresh.Execute(context.Background(), RefreshCreatorCommand{Name: "nova"})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	profile := result.Profile
	if profile.LifetimeViews != 65000 {
		t.Fatalf("expected lifetime views without the rejected record, got %d", profile.LifetimeViews)
	}
	if profile.VideoCount != 2 {
		t.Fatalf("expected two counted videos, got %d", profile.VideoCount)
	}
	if profile.TotalPaid != second.TotalPayment {
		t.Fatalf("expected total paid %d, got %d", second.TotalPayment, profile.TotalPaid)
	}
	if profile.UnpaidAmount != first.TotalPayment {
		t.Fatalf("expected unpaid amount %d, got %d", first.TotalPayment, profile.UnpaidAmount)
	}
}

func TestRefreshCreatorEmitsPromotionEvent(t *testing.T) {
	f := newLedgerFixture()
	seedVideo(t, f, "7300000000000000604", "nova", 300000, entities.PaymentStatusEligible)

	result, err := f.refresh.Execute(context.Background(), RefreshCreatorCommand{Name: "nova"})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if !result.Promoted || result.PreviousRank != entities.RankBronze {
		t.Fatalf("expected promotion from bronze, got %+v", result)
	}
	if result.Profile.CurrentRank != entities.RankSilver {
		t.Fatalf("expected silver rank at 300000 lifetime views, got %s", result.Profile.CurrentRank)
	}

	pending, err := f.store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected one outbox row, got %d", len(pending))
	}

	var envelope contractsv1.Envelope
	if err := json.Unmarshal(pending[0].Payload, &envelope); err != nil {
		t.Fatalf("decode envelope failed: %v", err)
	}
	if envelope.EventType != EventTypeCreatorRankPromoted {
		t.Fatalf("unexpected event type %s", envelope.EventType)
	}
	if envelope.SchemaVersion != 1 || envelope.SourceService != "payout-ledger-service" {
		t.Fatalf("unexpected envelope metadata %+v", envelope)
	}
	if envelope.PartitionKeyPath != "creator_name" || envelope.PartitionKey != "nova" {
		t.Fatalf("unexpected partitioning %+v", envelope)
	}
	if envelope.EventID == "" || envelope.TraceID != envelope.EventID {
		t.Fatalf("expected trace id seeded from event id, got %+v", envelope)
	}
	if !envelope.OccurredAt.Equal(testNow) {
		t.Fatalf("expected occurred_at at clock time, got %s", envelope.OccurredAt)
	}

	var data contractsv1.CreatorRankPromotedData
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		t.Fatalf("decode event data failed: %v", err)
	}
	if data.CreatorName != "nova" || data.PreviousRank != "bronze" || data.NewRank != "silver" {
		t.Fatalf("unexpected promotion data %+v", data)
	}
	if data.LifetimeViews != 300000 {
		t.Fatalf("expected lifetime views in the event, got %d", data.LifetimeViews)
	}
	if data.PromotedAt != testNow.Format(time.RFC3339) {
		t.Fatalf("unexpected promoted_at %s", data.PromotedAt)
	}
}

func TestRefreshCreatorDoesNotRepeatPromotion(t *testing.T) {
	f := newLedgerFixture()
	seedVideo(t, f, "7300000000000000605", "nova", 300000, entities.PaymentStatusEligible)
	if _, err := f.refresh.Execute(context.Background(), RefreshCreatorCommand{Name: "nova"}); err != nil {
		t.Fatalf("first refresh failed: %v", err)
	}

	result, err := f.refresh.Execute(context.Background(), RefreshCreatorCommand{Name: "nova"})
	if err != nil {
		t.Fatalf("second refresh failed: %v", err)
	}
	if result.Promoted {
		t.Fatalf("expected no promotion on an unchanged rank")
	}

	pending, err := f.store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list outbox failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected a single promotion event, got %d", len(pending))
	}
}

func TestRefreshCreatorNormalizesAndCreates(t *testing.T) {
	f := newLedgerFixture()

	result, err := f.refresh.Execute(context.Background(), RefreshCreatorCommand{Name: "  NOVA  "})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if result.Profile.Name != "nova" {
		t.Fatalf("expected normalized name, got %s", result.Profile.Name)
	}
	if result.Profile.VideoCount != 0 || result.Profile.CurrentRank != entities.RankBronze {
		t.Fatalf("expected an empty bronze profile, got %+v", result.Profile)
	}
}

func TestRefreshCreatorBlankName(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.refresh.Execute(context.Background(), RefreshCreatorCommand{Name: "   "})
	if !errors.Is(err, domainerrors.ErrInvalidCreatorInput) {
		t.Fatalf("expected invalid creator input, got %v", err)
	}
}
