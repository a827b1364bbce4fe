package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
	domainerrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
)

func TestLinkIdentitySurvivesRefresh(t *testing.T) {
	f := newLedgerFixture()
	f.mustSubmit(t, "Ria", "https://www.tiktok.com/@ria/video/7300000000000000501", 25000, testNow.Add(-72*time.Hour))

	linked, err := f.link.Execute(context.Background(), LinkIdentityCommand{Name: "RIA", ExternalUserID: "discord-889"})
	if err != nil {
		t.Fatalf("link identity failed: %v", err)
	}
	if linked.Name != "ria" || linked.ExternalUserID != "discord-889" {
		t.Fatalf("unexpected linked profile %+v", linked)
	}

	refreshed, err := f.refresh.Execute(context.Background(), RefreshCreatorCommand{Name: "ria"})
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if refreshed.Profile.ExternalUserID != "discord-889" {
		t.Fatalf("expected identity link to survive recomputation, got %q", refreshed.Profile.ExternalUserID)
	}
}

func TestLinkIdentityCreatesProfile(t *testing.T) {
	f := newLedgerFixture()

	linked, err := f.link.Execute(context.Background(), LinkIdentityCommand{Name: "newcomer", ExternalUserID: "discord-100"})
	if err != nil {
		t.Fatalf("link identity failed: %v", err)
	}
	if linked.CurrentRank != entities.RankBronze || linked.LifetimeViews != 0 {
		t.Fatalf("expected an empty bronze profile, got %+v", linked)
	}
}

func TestLinkIdentityRequiresBothFields(t *testing.T) {
	f := newLedgerFixture()

	if _, err := f.link.Execute(context.Background(), LinkIdentityCommand{Name: "", ExternalUserID: "discord-1"}); !errors.Is(err, domainerrors.ErrInvalidCreatorInput) {
		t.Fatalf("expected invalid input for blank name, got %v", err)
	}
	if _, err := f.link.Execute(context.Background(), LinkIdentityCommand{Name: "ria", ExternalUserID: "   "}); !errors.Is(err, domainerrors.ErrInvalidCreatorInput) {
		t.Fatalf("expected invalid input for blank external id, got %v", err)
	}
}
