package httpadapter

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"payline/contexts/community-engagement/promotion-service/application"
	domainerrors "payline/contexts/community-engagement/promotion-service/domain/errors"
	"payline/contexts/community-engagement/promotion-service/ports"
	httptransport "payline/contexts/community-engagement/promotion-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ListPromotionsHandler godoc
// @Summary List role grants
// @Description Lists rank promotion grants, newest first. Filter to a creator or to unacknowledged grants.
// @Tags promotion
// @Produce json
// @Param creator query string false "Creator name filter"
// @Param unacknowledged query bool false "Only grants awaiting delivery"
// @Param limit query int false "Page size (default 50, max 100)"
// @Success 200 {object} httptransport.ListPromotionsResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /community/promotions [get]
func (h Handler) ListPromotionsHandler(
	ctx context.Context,
	req httptransport.ListPromotionsRequest,
) (httptransport.ListPromotionsResponse, error) {
	filter := ports.GrantFilter{CreatorName: req.Creator}
	if strings.TrimSpace(req.Unacknowledged) != "" {
		unacked, err := strconv.ParseBool(strings.TrimSpace(req.Unacknowledged))
		if err != nil {
			return httptransport.ListPromotionsResponse{}, domainerrors.ErrInvalidGrantInput
		}
		filter.Unacknowledged = unacked
	}
	if strings.TrimSpace(req.Limit) != "" {
		limit, err := strconv.Atoi(strings.TrimSpace(req.Limit))
		if err != nil {
			return httptransport.ListPromotionsResponse{}, domainerrors.ErrInvalidGrantInput
		}
		filter.Limit = limit
	}

	grants, err := h.Service.ListGrants(ctx, filter)
	if err != nil {
		return httptransport.ListPromotionsResponse{}, err
	}
	resp := httptransport.ListPromotionsResponse{Items: make([]httptransport.RoleGrantDTO, 0, len(grants))}
	for _, grant := range grants {
		resp.Items = append(resp.Items, toGrantDTO(grant))
	}
	return resp, nil
}

// ManualGrantHandler godoc
// @Summary Record a grant manually
// @Description Operator override for promotions that never produced an event.
// @Tags promotion
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Operator id"
// @Param request body httptransport.ManualGrantRequest true "Grant"
// @Success 201 {object} httptransport.GrantResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /community/promotions [post]
func (h Handler) ManualGrantHandler(
	ctx context.Context,
	actorID string,
	req httptransport.ManualGrantRequest,
) (httptransport.GrantResponse, error) {
	logger := application.ResolveLogger(h.Logger)

	grant, err := h.Service.RecordPromotion(ctx, application.RecordPromotionInput{
		CreatorName:    req.CreatorName,
		ExternalUserID: req.ExternalUserID,
		PreviousRank:   req.PreviousRank,
		NewRank:        req.NewRank,
		LifetimeViews:  req.LifetimeViews,
	})
	if err != nil {
		return httptransport.GrantResponse{}, err
	}

	logger.Info("manual role grant recorded",
		"event", "manual_role_grant_recorded",
		"module", "community-engagement/promotion-service",
		"layer", "transport",
		"grant_id", grant.GrantID,
		"creator_name", grant.CreatorName,
		"actor_id", strings.TrimSpace(actorID),
	)
	return httptransport.GrantResponse{Grant: toGrantDTO(grant)}, nil
}

// AckPromotionHandler godoc
// @Summary Acknowledge a grant
// @Description Marks a grant delivered. Acknowledging twice is a conflict.
// @Tags promotion
// @Produce json
// @Param grant_id path string true "Grant id"
// @Success 200 {object} httptransport.GrantResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /community/promotions/{grant_id}/ack [post]
func (h Handler) AckPromotionHandler(ctx context.Context, grantID string) (httptransport.GrantResponse, error) {
	grant, err := h.Service.AcknowledgeGrant(ctx, grantID)
	if err != nil {
		return httptransport.GrantResponse{}, err
	}
	return httptransport.GrantResponse{Grant: toGrantDTO(grant)}, nil
}

func toGrantDTO(grant ports.RoleGrant) httptransport.RoleGrantDTO {
	dto := httptransport.RoleGrantDTO{
		GrantID:        grant.GrantID,
		CreatorName:    grant.CreatorName,
		ExternalUserID: grant.ExternalUserID,
		PreviousRank:   grant.PreviousRank,
		NewRank:        grant.NewRank,
		Role:           grant.Role,
		LifetimeViews:  grant.LifetimeViews,
		OccurredAt:     grant.OccurredAt.UTC().Format(time.RFC3339),
		Acknowledged:   grant.Acknowledged,
	}
	if grant.AcknowledgedAt != nil {
		dto.AcknowledgedAt = grant.AcknowledgedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
