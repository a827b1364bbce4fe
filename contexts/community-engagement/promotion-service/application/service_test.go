package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"payline/contexts/community-engagement/promotion-service/adapters/memory"
	domainerrors "payline/contexts/community-engagement/promotion-service/domain/errors"
	"payline/contexts/community-engagement/promotion-service/ports"
)

var grantNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type stubClock struct{ now time.Time }

func (c stubClock) Now() time.Time { return c.now }

func newService() (Service, *memory.Store) {
	store := memory.NewStore()
	return Service{Repo: store, Clock: stubClock{now: grantNow}, IDGen: store}, store
}

func TestRecordPromotionDerivesRole(t *testing.T) {
	svc, _ := newService()
	occurred := grantNow.Add(-time.Hour)

	grant, err := svc.RecordPromotion(context.Background(), RecordPromotionInput{
		CreatorName:    "  RIA ",
		ExternalUserID: "discord-889",
		PreviousRank:   "Bronze",
		NewRank:        " Silver ",
		LifetimeViews:  300000,
		OccurredAt:     occurred,
	})
	if err != nil {
		t.Fatalf("record promotion failed: %v", err)
	}
	if grant.GrantID == "" {
		t.Fatalf("expected a generated grant id")
	}
	if grant.CreatorName != "ria" || grant.PreviousRank != "bronze" || grant.NewRank != "silver" {
		t.Fatalf("expected lowercased fields, got %+v", grant)
	}
	if grant.Role != "creator-silver" {
		t.Fatalf("expected role derived from the new rank, got %s", grant.Role)
	}
	if !grant.OccurredAt.Equal(occurred) || !grant.CreatedAt.Equal(grantNow) {
		t.Fatalf("unexpected timestamps %+v", grant)
	}
	if grant.Acknowledged {
		t.Fatalf("expected a fresh grant to start unacknowledged")
	}
}

func TestRecordPromotionDefaultsOccurredAt(t *testing.T) {
	svc, _ := newService()

	grant, err := svc.RecordPromotion(context.Background(), RecordPromotionInput{
		CreatorName: "ria",
		NewRank:     "gold",
	})
	if err != nil {
		t.Fatalf("record promotion failed: %v", err)
	}
	if !grant.OccurredAt.Equal(grantNow) {
		t.Fatalf("expected occurred_at defaulted to the clock, got %s", grant.OccurredAt)
	}
}

func TestRecordPromotionValidatesInput(t *testing.T) {
	svc, _ := newService()

	if _, err := svc.RecordPromotion(context.Background(), RecordPromotionInput{NewRank: "gold"}); !errors.Is(err, domainerrors.ErrInvalidGrantInput) {
		t.Fatalf("expected invalid input for a blank creator, got %v", err)
	}
	if _, err := svc.RecordPromotion(context.Background(), RecordPromotionInput{CreatorName: "ria"}); !errors.Is(err, domainerrors.ErrInvalidGrantInput) {
		t.Fatalf("expected invalid input for a blank rank, got %v", err)
	}
}

func TestListGrantsNormalizesFilter(t *testing.T) {
	svc, _ := newService()
	for i, input := range []RecordPromotionInput{
		{CreatorName: "ria", NewRank: "silver", OccurredAt: grantNow.Add(-3 * time.Hour)},
		{CreatorName: "ria", NewRank: "gold", OccurredAt: grantNow.Add(-time.Hour)},
		{CreatorName: "marco", NewRank: "silver", OccurredAt: grantNow.Add(-2 * time.Hour)},
	} {
		if _, err := svc.RecordPromotion(context.Background(), input); err != nil {
			t.Fatalf("seed grant %d failed: %v", i, err)
		}
	}

	grants, err := svc.ListGrants(context.Background(), ports.GrantFilter{CreatorName: "  RIA "})
	if err != nil {
		t.Fatalf("list grants failed: %v", err)
	}
	if len(grants) != 2 {
		t.Fatalf("expected two grants for ria, got %d", len(grants))
	}
	if grants[0].NewRank != "gold" || grants[1].NewRank != "silver" {
		t.Fatalf("expected newest first, got %s then %s", grants[0].NewRank, grants[1].NewRank)
	}
}

func TestListGrantsRejectsNegativeLimit(t *testing.T) {
	svc, _ := newService()

	if _, err := svc.ListGrants(context.Background(), ports.GrantFilter{Limit: -1}); !errors.Is(err, domainerrors.ErrInvalidGrantInput) {
		t.Fatalf("expected invalid input for a negative limit, got %v", err)
	}
}

func TestListGrantsCapsTheLimit(t *testing.T) {
	svc, store := newService()
	for i := 0; i < 120; i++ {
		grant := ports.RoleGrant{
			GrantID:     fmt.Sprintf("grant-%03d", i),
			CreatorName: "ria",
			NewRank:     "silver",
			Role:        "creator-silver",
			OccurredAt:  grantNow.Add(-time.Duration(i) * time.Minute),
		}
		if err := store.AddGrant(context.Background(), grant); err != nil {
			t.Fatalf("seed grant %d failed: %v", i, err)
		}
	}

	grants, err := svc.ListGrants(context.Background(), ports.GrantFilter{Limit: 500})
	if err != nil {
		t.Fatalf("list grants failed: %v", err)
	}
	if len(grants) != 100 {
		t.Fatalf("expected the limit capped at 100, got %d", len(grants))
	}
}

func TestAcknowledgeGrantOnce(t *testing.T) {
	svc, _ := newService()
	grant, err := svc.RecordPromotion(context.Background(), RecordPromotionInput{CreatorName: "ria", NewRank: "silver"})
	if err != nil {
		t.Fatalf("record promotion failed: %v", err)
	}

	acked, err := svc.AcknowledgeGrant(context.Background(), grant.GrantID)
	if err != nil {
		t.Fatalf("acknowledge failed: %v", err)
	}
	if !acked.Acknowledged || acked.AcknowledgedAt == nil || !acked.AcknowledgedAt.Equal(grantNow) {
		t.Fatalf("expected acknowledgement stamped at clock time, got %+v", acked)
	}

	if _, err := svc.AcknowledgeGrant(context.Background(), grant.GrantID); !errors.Is(err, domainerrors.ErrAlreadyAcknowledged) {
		t.Fatalf("expected already acknowledged error, got %v", err)
	}
}

func TestAcknowledgeGrantMissing(t *testing.T) {
	svc, _ := newService()

	if _, err := svc.AcknowledgeGrant(context.Background(), "missing"); !errors.Is(err, domainerrors.ErrGrantNotFound) {
		t.Fatalf("expected grant not found, got %v", err)
	}
	if _, err := svc.AcknowledgeGrant(context.Background(), "   "); !errors.Is(err, domainerrors.ErrInvalidGrantInput) {
		t.Fatalf("expected invalid input for a blank id, got %v", err)
	}
}
