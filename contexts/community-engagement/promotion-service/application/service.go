package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	domainerrors "payline/contexts/community-engagement/promotion-service/domain/errors"
	"payline/contexts/community-engagement/promotion-service/ports"
)

type RecordPromotionInput struct {
	CreatorName    string
	ExternalUserID string
	PreviousRank   string
	NewRank        string
	LifetimeViews  int64
	OccurredAt     time.Time
}

// Service grants community roles for rank promotions. Grants come in from
// the promotion consumer or from an operator override; either way the
// grant sits unacknowledged until someone delivers the role and acks it.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (s Service) RecordPromotion(ctx context.Context, input RecordPromotionInput) (ports.RoleGrant, error) {
	logger := ResolveLogger(s.Logger)

	creatorName := strings.ToLower(strings.TrimSpace(input.CreatorName))
	newRank := strings.ToLower(strings.TrimSpace(input.NewRank))
	if creatorName == "" || newRank == "" {
		return ports.RoleGrant{}, domainerrors.ErrInvalidGrantInput
	}

	now := s.Clock.Now().UTC()
	occurredAt := input.OccurredAt.UTC()
	if occurredAt.IsZero() {
		occurredAt = now
	}
	grantID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.RoleGrant{}, err
	}

	grant := ports.RoleGrant{
		GrantID:        grantID,
		CreatorName:    creatorName,
		ExternalUserID: strings.TrimSpace(input.ExternalUserID),
		PreviousRank:   strings.ToLower(strings.TrimSpace(input.PreviousRank)),
		NewRank:        newRank,
		Role:           "creator-" + newRank,
		LifetimeViews:  input.LifetimeViews,
		OccurredAt:     occurredAt,
		CreatedAt:      now,
	}
	if err := s.Repo.AddGrant(ctx, grant); err != nil {
		return ports.RoleGrant{}, err
	}

	logger.Info("role grant recorded",
		"event", "role_grant_recorded",
		"module", "community-engagement/promotion-service",
		"layer", "application",
		"grant_id", grant.GrantID,
		"creator_name", grant.CreatorName,
		"previous_rank", grant.PreviousRank,
		"new_rank", grant.NewRank,
		"role", grant.Role,
	)
	return grant, nil
}

func (s Service) ListGrants(ctx context.Context, filter ports.GrantFilter) ([]ports.RoleGrant, error) {
	if filter.Limit < 0 {
		return nil, domainerrors.ErrInvalidGrantInput
	}
	if filter.Limit == 0 {
		filter.Limit = 50
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	filter.CreatorName = strings.ToLower(strings.TrimSpace(filter.CreatorName))
	return s.Repo.ListGrants(ctx, filter)
}

func (s Service) AcknowledgeGrant(ctx context.Context, grantID string) (ports.RoleGrant, error) {
	logger := ResolveLogger(s.Logger)

	grantID = strings.TrimSpace(grantID)
	if grantID == "" {
		return ports.RoleGrant{}, domainerrors.ErrInvalidGrantInput
	}
	grant, err := s.Repo.GetGrant(ctx, grantID)
	if err != nil {
		return ports.RoleGrant{}, err
	}
	if grant.Acknowledged {
		return ports.RoleGrant{}, domainerrors.ErrAlreadyAcknowledged
	}

	now := s.Clock.Now().UTC()
	grant.Acknowledged = true
	grant.AcknowledgedAt = &now
	if err := s.Repo.UpdateGrant(ctx, grant); err != nil {
		return ports.RoleGrant{}, err
	}

	logger.Info("role grant acknowledged",
		"event", "role_grant_acknowledged",
		"module", "community-engagement/promotion-service",
		"layer", "application",
		"grant_id", grant.GrantID,
		"creator_name", grant.CreatorName,
		"role", grant.Role,
	)
	return grant, nil
}
