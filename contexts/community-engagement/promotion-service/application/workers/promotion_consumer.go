package workers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	application "payline/contexts/community-engagement/promotion-service/application"
	"payline/contexts/community-engagement/promotion-service/ports"
)

const (
	rankPromotedTopic             = "creator.rank.promoted"
	defaultPromotionConsumerGroup = "promotion-service-rank-promoted-cg"
)

// PromotionConsumer turns creator.rank.promoted envelopes into role grants.
type PromotionConsumer struct {
	Subscriber    ports.EventSubscriber
	Service       application.Service
	Dedup         ports.EventDedupStore
	Clock         ports.Clock
	ConsumerGroup string
	DedupTTL      time.Duration
	Disabled      bool
	Logger        *slog.Logger
}

func (c PromotionConsumer) Start(ctx context.Context) error {
	logger := application.ResolveLogger(c.Logger)
	if c.Disabled {
		logger.Info("rank promotion consumer disabled by feature flag",
			"event", "promotion_consumer_disabled",
			"module", "community-engagement/promotion-service",
			"layer", "worker",
		)
		return nil
	}
	group := strings.TrimSpace(c.ConsumerGroup)
	if group == "" {
		group = defaultPromotionConsumerGroup
	}
	return c.Subscriber.Subscribe(ctx, rankPromotedTopic, group, c.handleRankPromoted)
}

func (c PromotionConsumer) handleRankPromoted(ctx context.Context, event ports.EventEnvelope) error {
	logger := application.ResolveLogger(c.Logger)
	now := time.Now().UTC()
	if c.Clock != nil {
		now = c.Clock.Now().UTC()
	}

	alreadyProcessed, err := c.Dedup.ReserveEvent(ctx, event.EventID, hashPayload(event.Data), now.Add(c.dedupTTL()))
	if err != nil {
		logger.Error("rank promotion dedupe failed",
			"event", "promotion_consumer_dedupe_failed",
			"module", "community-engagement/promotion-service",
			"layer", "worker",
			"event_id", event.EventID,
			"error", err.Error(),
		)
		return err
	}
	if alreadyProcessed {
		logger.Debug("rank promotion already processed",
			"event", "promotion_consumer_replayed",
			"module", "community-engagement/promotion-service",
			"layer", "worker",
			"event_id", event.EventID,
		)
		return nil
	}

	var payload struct {
		CreatorName    string `json:"creator_name"`
		ExternalUserID string `json:"external_user_id"`
		PreviousRank   string `json:"previous_rank"`
		NewRank        string `json:"new_rank"`
		LifetimeViews  int64  `json:"lifetime_views"`
		PromotedAt     string `json:"promoted_at"`
	}
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		return fmt.Errorf("decode creator.rank.promoted payload: %w", err)
	}
	if strings.TrimSpace(payload.CreatorName) == "" {
		return fmt.Errorf("creator.rank.promoted payload missing creator_name")
	}

	occurredAt := event.OccurredAt.UTC()
	if occurredAt.IsZero() {
		occurredAt = now
	}
	if parsed, err := time.Parse(time.RFC3339, payload.PromotedAt); err == nil {
		occurredAt = parsed.UTC()
	}

	grant, err := c.Service.RecordPromotion(ctx, application.RecordPromotionInput{
		CreatorName:    payload.CreatorName,
		ExternalUserID: payload.ExternalUserID,
		PreviousRank:   payload.PreviousRank,
		NewRank:        payload.NewRank,
		LifetimeViews:  payload.LifetimeViews,
		OccurredAt:     occurredAt,
	})
	if err != nil {
		logger.Error("rank promotion grant failed",
			"event", "promotion_consumer_grant_failed",
			"module", "community-engagement/promotion-service",
			"layer", "worker",
			"event_id", event.EventID,
			"creator_name", payload.CreatorName,
			"error", err.Error(),
		)
		return err
	}

	logger.Info("rank promotion granted",
		"event", "promotion_consumer_granted",
		"module", "community-engagement/promotion-service",
		"layer", "worker",
		"event_id", event.EventID,
		"grant_id", grant.GrantID,
		"creator_name", grant.CreatorName,
		"new_rank", grant.NewRank,
		"role", grant.Role,
	)
	return nil
}

func (c PromotionConsumer) dedupTTL() time.Duration {
	if c.DedupTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return c.DedupTTL
}

func hashPayload(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
