package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	promotionerrors "payline/contexts/community-engagement/promotion-service/domain/errors"
	promotionhttp "payline/contexts/community-engagement/promotion-service/transport/http"
)

func writePromotionsError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, promotionhttp.ErrorResponse{Code: code, Message: message})
}

func writePromotionsDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, promotionerrors.ErrInvalidGrantInput):
		writePromotionsError(w, http.StatusBadRequest, "invalid_grant_input", err.Error())
	case errors.Is(err, promotionerrors.ErrGrantNotFound):
		writePromotionsError(w, http.StatusNotFound, "grant_not_found", err.Error())
	case errors.Is(err, promotionerrors.ErrAlreadyAcknowledged):
		writePromotionsError(w, http.StatusConflict, "already_acknowledged", err.Error())
	case errors.Is(err, promotionerrors.ErrEventPayloadConflict):
		writePromotionsError(w, http.StatusConflict, "event_payload_conflict", err.Error())
	default:
		writePromotionsError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListPromotions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := promotionhttp.ListPromotionsRequest{
		Creator:        query.Get("creator"),
		Unacknowledged: query.Get("unacknowledged"),
		Limit:          query.Get("limit"),
	}

	resp, err := s.promotions.Handler.ListPromotionsHandler(r.Context(), req)
	if err != nil {
		writePromotionsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleManualGrant(w http.ResponseWriter, r *http.Request) {
	actorID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if actorID == "" {
		writePromotionsError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req promotionhttp.ManualGrantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePromotionsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.promotions.Handler.ManualGrantHandler(r.Context(), actorID, req)
	if err != nil {
		writePromotionsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleAckPromotion(w http.ResponseWriter, r *http.Request) {
	resp, err := s.promotions.Handler.AckPromotionHandler(r.Context(), r.PathValue("grant_id"))
	if err != nil {
		writePromotionsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
