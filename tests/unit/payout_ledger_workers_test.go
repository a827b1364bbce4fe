package unit

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	ledgermemory "payline/contexts/creator-payouts/payout-ledger-service/adapters/memory"
	ledgerworkers "payline/contexts/creator-payouts/payout-ledger-service/application/workers"
	ledgerentities "payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	ledgerports "payline/contexts/creator-payouts/payout-ledger-service/ports"
	contractsv1 "payline/contracts/gen/events/v1"
)

type recordingPublisher struct {
	topics []string
	events []ledgerports.EventEnvelope
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, event ledgerports.EventEnvelope) error {
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

func pendingSeed(videoID string, eligibleAt time.Time) ledgerentities.VideoRecord {
	posted := eligibleAt.Add(-48 * time.Hour)
	return ledgerentities.VideoRecord{
		VideoID:       videoID,
		URL:           "https://www.tiktok.com/@ria/video/" + videoID,
		CreatorName:   "ria",
		ViewCount:     50000,
		DatePosted:    posted,
		DateEligible:  eligibleAt,
		DateSubmitted: posted,
		BasePayment:   20,
		BonusAmount:   5,
		TotalPayment:  25,
		Status:        ledgerentities.PaymentStatusPending,
		ViewHistory: []ledgerentities.ViewHistoryEntry{
			{Views: 50000, RecordedAt: posted, Note: ledgerentities.HistoryNoteInitial},
		},
	}
}

func TestEligibilitySweepPromotesDueVideos(t *testing.T) {
	now := time.Now().UTC()
	store := ledgermemory.NewStore([]ledgerentities.VideoRecord{
		pendingSeed("7312390000000000101", now.Add(-2*time.Hour)),
		pendingSeed("7312390000000000102", now.Add(24*time.Hour)),
	})

	job := ledgerworkers.EligibilitySweepJob{
		Repository: store,
		Clock:      store,
		Logger:     slog.Default(),
	}
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	due, err := store.GetVideo(context.Background(), "7312390000000000101")
	if err != nil {
		t.Fatalf("get due video: %v", err)
	}
	if due.Status != ledgerentities.PaymentStatusEligible {
		t.Fatalf("expected due video promoted, got %s", due.Status)
	}
	if len(due.ViewHistory) != 1 {
		t.Fatalf("sweep must not touch view history, got %d entries", len(due.ViewHistory))
	}

	early, err := store.GetVideo(context.Background(), "7312390000000000102")
	if err != nil {
		t.Fatalf("get early video: %v", err)
	}
	if early.Status != ledgerentities.PaymentStatusPending {
		t.Fatalf("expected early video untouched, got %s", early.Status)
	}
}

func TestEligibilitySweepDisabled(t *testing.T) {
	job := ledgerworkers.EligibilitySweepJob{Disabled: true, Logger: slog.Default()}
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("disabled sweep must be a no-op, got %v", err)
	}
}

func TestOutboxRelayPublishesPendingRows(t *testing.T) {
	store := ledgermemory.NewStore(nil)
	ctx := context.Background()

	envelope := contractsv1.Envelope{
		EventID:          "evt-relay-1",
		EventType:        "creator.rank.promoted",
		OccurredAt:       time.Now().UTC().Truncate(time.Second),
		SourceService:    "payout-ledger-service",
		TraceID:          "evt-relay-1",
		SchemaVersion:    1,
		PartitionKeyPath: "creator_name",
		PartitionKey:     "ria",
		Data:             json.RawMessage(`{"creator_name":"ria","new_rank":"silver"}`),
	}
	if err := store.AppendOutbox(ctx, envelope); err != nil {
		t.Fatalf("append outbox: %v", err)
	}

	pub := &recordingPublisher{}
	relay := ledgerworkers.OutboxRelay{
		Outbox:    store,
		Publisher: pub,
		Clock:     store,
		Logger:    slog.Default(),
	}
	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("relay failed: %v", err)
	}

	if len(pub.topics) != 1 || pub.topics[0] != "creator.rank.promoted" {
		t.Fatalf("expected one publish on the event type topic, got %v", pub.topics)
	}
	published := pub.events[0]
	if published.EventID != envelope.EventID || published.PartitionKey != "ria" {
		t.Fatalf("published envelope lost fields: %+v", published)
	}
	if !published.OccurredAt.Equal(envelope.OccurredAt) {
		t.Fatalf("occurred_at mangled in transit: %v", published.OccurredAt)
	}

	remaining, err := store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("list pending outbox: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected the outbox drained, got %d rows", len(remaining))
	}
}

func TestOutboxRelayDisabled(t *testing.T) {
	relay := ledgerworkers.OutboxRelay{Disabled: true, Logger: slog.Default()}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("disabled relay must be a no-op, got %v", err)
	}
}
