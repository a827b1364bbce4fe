package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
)

func TestDeleteVideoRemovesRecordAndShrinksAggregate(t *testing.T) {
	f := newLedgerFixture()
	first := f.mustSubmit(t, "Ria", "https://www.tiktok.com/@ria/video/7300000000000000401", 25000, testNow.Add(-72*time.Hour))
	f.mustSubmit(t, "Ria", "https://www.tiktok.com/@ria/video/7300000000000000402", 30000, testNow.Add(-72*time.Hour))

	if err := f.remove.Execute(context.Background(), DeleteVideoCommand{VideoID: first.VideoID, ActorID: "ops-1"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := f.store.GetVideo(context.Background(), first.VideoID); !errors.Is(err, domainerrors.ErrVideoNotFound) {
		t.Fatalf("expected record gone, got %v", err)
	}

	refreshed, err := f.refresh.Execute(context.Background(), RefreshCreatorCommand{Name: "ria"})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if refreshed.Profile.LifetimeViews != 30000 || refreshed.Profile.VideoCount != 1 {
		t.Fatalf("expected aggregate over the surviving record, got %+v", refreshed.Profile)
	}
}

func TestDeleteVideoUnknown(t *testing.T) {
	f := newLedgerFixture()

	err := f.remove.Execute(context.Background(), DeleteVideoCommand{VideoID: "missing", ActorID: "ops-1"})
	if !errors.Is(err, domainerrors.ErrVideoNotFound) {
		t.Fatalf("expected video not found, got %v", err)
	}
}

func TestDeleteVideoBlankID(t *testing.T) {
	f := newLedgerFixture()

	err := f.remove.Execute(context.Background(), DeleteVideoCommand{VideoID: "  ", ActorID: "ops-1"})
	if !errors.Is(err, domainerrors.ErrInvalidVideoInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}
