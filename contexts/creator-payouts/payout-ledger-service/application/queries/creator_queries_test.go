package queries

import (
	"context"
	"testing"
	"time"

	"payline/contexts/creator-payouts/payout-ledger-service/domain/entities"
)

func TestListCreatorsOrderedByLifetimeViews(t *testing.T) {
	store := storeWith(t,
		newVideo("v-1", "ria", 150000, entities.PaymentStatusEligible, testNow),
		newVideo("v-2", "ria", 150000, entities.PaymentStatusEligible, testNow.Add(-time.Hour)),
		newVideo("v-3", "marco", 90000, entities.PaymentStatusEligible, testNow),
		newVideo("v-4", "zoe", 90000, entities.PaymentStatusEligible, testNow),
	)
	uc := CreatorQueriesUseCase{Repository: store, Schedule: entities.DefaultRankSchedule()}

	profiles, err := uc.ListCreatorsWithRanks(context.Background())
	if err != nil {
		t.Fatalf("list creators failed: %v", err)
	}
	if len(profiles) != 3 {
		t.Fatalf("expected three creators, got %d", len(profiles))
	}
	if profiles[0].Name != "ria" || profiles[1].Name != "marco" || profiles[2].Name != "zoe" {
		t.Fatalf("unexpected order: %s, %s, %s", profiles[0].Name, profiles[1].Name, profiles[2].Name)
	}
	if profiles[0].LifetimeViews != 300000 || profiles[0].CurrentRank != entities.RankSilver {
		t.Fatalf("expected silver leader at 300000 views, got %+v", profiles[0])
	}
}

func TestListCreatorsExcludesRejectedViews(t *testing.T) {
	rejected := newVideo("v-2", "ria", 500000, entities.PaymentStatusRejected, testNow)
	store := storeWith(t,
		newVideo("v-1", "ria", 150000, entities.PaymentStatusEligible, testNow),
		rejected,
	)
	uc := CreatorQueriesUseCase{Repository: store, Schedule: entities.DefaultRankSchedule()}

	profiles, err := uc.ListCreatorsWithRanks(context.Background())
	if err != nil {
		t.Fatalf("list creators failed: %v", err)
	}
	if profiles[0].LifetimeViews != 150000 || profiles[0].VideoCount != 1 {
		t.Fatalf("expected rejected record excluded, got %+v", profiles[0])
	}
}

func TestListCreatorsMergesIdentityLink(t *testing.T) {
	store := storeWith(t, newVideo("v-1", "ria", 150000, entities.PaymentStatusEligible, testNow))
	if err := store.UpsertCreator(context.Background(), entities.CreatorProfile{
		Name:           "ria",
		ExternalUserID: "discord-889",
		LifetimeViews:  1,
		CurrentRank:    entities.RankLegend,
	}); err != nil {
		t.Fatalf("seed creator failed: %v", err)
	}
	uc := CreatorQueriesUseCase{Repository: store, Schedule: entities.DefaultRankSchedule()}

	profiles, err := uc.ListCreatorsWithRanks(context.Background())
	if err != nil {
		t.Fatalf("list creators failed: %v", err)
	}
	profile := profiles[0]
	if profile.ExternalUserID != "discord-889" {
		t.Fatalf("expected stored identity link, got %q", profile.ExternalUserID)
	}
	if profile.LifetimeViews != 150000 || profile.CurrentRank != entities.RankBronze {
		t.Fatalf("expected fresh aggregate over the stale row, got %+v", profile)
	}
}
