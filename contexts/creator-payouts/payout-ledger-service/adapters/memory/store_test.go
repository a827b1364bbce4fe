package memory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	"payline/contexts/creator-payouts/payout-ledger-service/ports"
)

var storeNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testVideo(id string, views int64, status entities.PaymentStatus, eligibleAt time.Time) entities.VideoRecord {
	return entities.VideoRecord{
		VideoID:       id,
		URL:           "https://www.tiktok.com/@ria/video/" + id,
		CreatorName:   "ria",
		ViewCount:     views,
		DatePosted:    eligibleAt.Add(-48 * time.Hour),
		DateEligible:  eligibleAt,
		DateSubmitted: storeNow,
		Status:        status,
		ViewHistory: []entities.ViewHistoryEntry{
			{Views: views, RecordedAt: storeNow, Note: entities.HistoryNoteInitial},
		},
	}
}

func TestCreateVideoRejectsDuplicateID(t *testing.T) {
	store := NewStore(nil)
	video := testVideo("v-1", 25000, entities.PaymentStatusPending, storeNow)
	if err := store.CreateVideo(context.Background(), video); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := store.CreateVideo(context.Background(), video); !errors.Is(err, domainerrors.ErrDuplicateVideo) {
		t.Fatalf("expected duplicate video error, got %v", err)
	}
}

func TestUpdateVideoAppendsHistoryOnly(t *testing.T) {
	store := NewStore(nil)
	video := testVideo("v-1", 25000, entities.PaymentStatusPending, storeNow)
	if err := store.CreateVideo(context.Background(), video); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated := video
	updated.ViewCount = 40000
	// The embedded slice must be ignored; only appended entries land.
	updated.ViewHistory = nil
	entry := entities.ViewHistoryEntry{Views: 40000, RecordedAt: storeNow.Add(time.Hour), Note: entities.HistoryNoteUpdated}
	if err := store.UpdateVideo(context.Background(), updated, entry); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored, err := store.GetVideo(context.Background(), "v-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ViewCount != 40000 {
		t.Fatalf("expected scalar update applied, got %d", stored.ViewCount)
	}
	if len(stored.ViewHistory) != 2 {
		t.Fatalf("expected history to grow to two entries, got %d", len(stored.ViewHistory))
	}
	if stored.ViewHistory[1].Note != entities.HistoryNoteUpdated {
		t.Fatalf("unexpected appended entry %+v", stored.ViewHistory[1])
	}
}

func TestUpdateVideoUnknown(t *testing.T) {
	store := NewStore(nil)
	err := store.UpdateVideo(context.Background(), testVideo("missing", 1000, entities.PaymentStatusPending, storeNow))
	if !errors.Is(err, domainerrors.ErrVideoNotFound) {
		t.Fatalf("expected video not found, got %v", err)
	}
}

func TestListPendingDueFiltersAndOrders(t *testing.T) {
	store := NewStore(nil)
	seeds := []entities.VideoRecord{
		testVideo("v-due-late", 25000, entities.PaymentStatusPending, storeNow.Add(-time.Hour)),
		testVideo("v-due-early", 25000, entities.PaymentStatusPending, storeNow.Add(-2*time.Hour)),
		testVideo("v-not-due", 25000, entities.PaymentStatusPending, storeNow.Add(time.Hour)),
		testVideo("v-below-floor", 10000, entities.PaymentStatusPending, storeNow.Add(-2*time.Hour)),
		testVideo("v-eligible", 25000, entities.PaymentStatusEligible, storeNow.Add(-2*time.Hour)),
	}
	for _, seed := range seeds {
		if err := store.CreateVideo(context.Background(), seed); err != nil {
			t.Fatalf("seed %s failed: %v", seed.VideoID, err)
		}
	}

	due, err := store.ListPendingDue(context.Background(), storeNow, 100)
	if err != nil {
		t.Fatalf("list pending due failed: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("expected two due records, got %d", len(due))
	}
	if due[0].VideoID != "v-due-early" || due[1].VideoID != "v-due-late" {
		t.Fatalf("unexpected order: %s, %s", due[0].VideoID, due[1].VideoID)
	}

	capped, err := store.ListPendingDue(context.Background(), storeNow, 1)
	if err != nil {
		t.Fatalf("list pending due failed: %v", err)
	}
	if len(capped) != 1 || capped[0].VideoID != "v-due-early" {
		t.Fatalf("expected the earliest due record only, got %+v", capped)
	}
}

func TestIdempotencyRecordExpires(t *testing.T) {
	store := NewStore(nil)
	record := ports.IdempotencyRecord{
		Key:             "idem-1",
		RequestHash:     "abc",
		ResponsePayload: []byte(`{}`),
		ExpiresAt:       storeNow.Add(time.Hour),
	}
	if err := store.PutRecord(context.Background(), record); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	if _, found, err := store.GetRecord(context.Background(), "idem-1", storeNow); err != nil || !found {
		t.Fatalf("expected live record, found=%v err=%v", found, err)
	}
	if _, found, err := store.GetRecord(context.Background(), "idem-1", storeNow.Add(2*time.Hour)); err != nil || found {
		t.Fatalf("expected expired record to vanish, found=%v err=%v", found, err)
	}
}

func TestOutboxLifecycle(t *testing.T) {
	store := NewStore(nil)
	envelope := ports.EventEnvelope{
		EventID:       "evt-1",
		EventType:     "creator.rank.promoted",
		OccurredAt:    storeNow,
		SourceService: "payout-ledger-service",
		TraceID:       "evt-1",
		SchemaVersion: 1,
		PartitionKey:  "ria",
		Data:          json.RawMessage(`{"creator_name":"ria"}`),
	}
	if err := store.AppendOutbox(context.Background(), envelope); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected one pending row, got %d", len(pending))
	}
	row := pending[0]
	if row.OutboxID == "" || row.EventType != "creator.rank.promoted" || row.PartitionKey != "ria" {
		t.Fatalf("unexpected row %+v", row)
	}
	var decoded ports.EventEnvelope
	if err := json.Unmarshal(row.Payload, &decoded); err != nil {
		t.Fatalf("payload decode failed: %v", err)
	}
	if decoded.EventID != "evt-1" || decoded.SchemaVersion != 1 {
		t.Fatalf("payload does not round-trip, got %+v", decoded)
	}

	if err := store.MarkOutboxPublished(context.Background(), row.OutboxID, storeNow); err != nil {
		t.Fatalf("mark published failed: %v", err)
	}
	drained, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(drained) != 0 {
		t.Fatalf("expected the outbox drained, got %d rows", len(drained))
	}

	if err := store.MarkOutboxPublished(context.Background(), "missing", storeNow); err != nil {
		t.Fatalf("expected marking an unknown row to be a no-op, got %v", err)
	}
}

func TestDeleteVideoUnknown(t *testing.T) {
	store := NewStore(nil)
	if err := store.DeleteVideo(context.Background(), "missing"); !errors.Is(err, domainerrors.ErrVideoNotFound) {
		t.Fatalf("expected video not found, got %v", err)
	}
}

func TestGetVideoReturnsCopies(t *testing.T) {
	store := NewStore(nil)
	if err := store.CreateVideo(context.Background(), testVideo("v-1", 25000, entities.PaymentStatusPending, storeNow)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := store.GetVideo(context.Background(), "v-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	first.ViewHistory[0].Views = 999

	second, err := store.GetVideo(context.Background(), "v-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if second.ViewHistory[0].Views != 25000 {
		t.Fatalf("expected stored history untouched, got %d", second.ViewHistory[0].Views)
	}
}
