package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerrors "payline/contexts/community-engagement/promotion-service/domain/errors"
	"payline/contexts/community-engagement/promotion-service/ports"
)

func TestReserveEventLifecycle(t *testing.T) {
	store := NewStore()
	expires := time.Now().Add(time.Hour)

	already, err := store.ReserveEvent(context.Background(), "evt-1", "hash-a", expires)
	if err != nil || already {
		t.Fatalf("expected a fresh reservation, already=%v err=%v", already, err)
	}

	already, err = store.ReserveEvent(context.Background(), "evt-1", "hash-a", expires)
	if err != nil || !already {
		t.Fatalf("expected a replay to report already processed, already=%v err=%v", already, err)
	}

	if _, err := store.ReserveEvent(context.Background(), "evt-1", "hash-b", expires); !errors.Is(err, domainerrors.ErrEventPayloadConflict) {
		t.Fatalf("expected payload conflict under a live reservation, got %v", err)
	}
}

func TestReserveEventReclaimsExpired(t *testing.T) {
	store := NewStore()
	expired := time.Now().Add(-time.Minute)

	if _, err := store.ReserveEvent(context.Background(), "evt-1", "hash-a", expired); err != nil {
		t.Fatalf("first reservation failed: %v", err)
	}

	already, err := store.ReserveEvent(context.Background(), "evt-1", "hash-b", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("expected an expired reservation to be reclaimed, got %v", err)
	}
	if already {
		t.Fatalf("expected the reclaimed event to process again")
	}
}

func TestListGrantsOrderAndFilters(t *testing.T) {
	store := NewStore()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ackedAt := base
	seeds := []ports.RoleGrant{
		{GrantID: "g-1", CreatorName: "ria", NewRank: "silver", OccurredAt: base.Add(-3 * time.Hour)},
		{GrantID: "g-2", CreatorName: "ria", NewRank: "gold", OccurredAt: base.Add(-time.Hour), Acknowledged: true, AcknowledgedAt: &ackedAt},
		{GrantID: "g-3", CreatorName: "marco", NewRank: "silver", OccurredAt: base.Add(-2 * time.Hour)},
	}
	for _, seed := range seeds {
		if err := store.AddGrant(context.Background(), seed); err != nil {
			t.Fatalf("seed %s failed: %v", seed.GrantID, err)
		}
	}

	all, err := store.ListGrants(context.Background(), ports.GrantFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 || all[0].GrantID != "g-2" || all[1].GrantID != "g-3" || all[2].GrantID != "g-1" {
		t.Fatalf("unexpected order %+v", all)
	}

	open, err := store.ListGrants(context.Background(), ports.GrantFilter{Unacknowledged: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(open) != 2 {
		t.Fatalf("expected two unacknowledged grants, got %d", len(open))
	}

	capped, err := store.ListGrants(context.Background(), ports.GrantFilter{Limit: 1})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(capped) != 1 || capped[0].GrantID != "g-2" {
		t.Fatalf("expected the newest grant only, got %+v", capped)
	}
}

func TestUpdateGrantUnknown(t *testing.T) {
	store := NewStore()
	err := store.UpdateGrant(context.Background(), ports.RoleGrant{GrantID: "missing"})
	if !errors.Is(err, domainerrors.ErrGrantNotFound) {
		t.Fatalf("expected grant not found, got %v", err)
	}
}
