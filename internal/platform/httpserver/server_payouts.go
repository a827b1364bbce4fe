package httpserver

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	payoutserrors "payline/contexts/creator-payouts/payout-ledger-service/domain/errors"
	payoutshttp "payline/contexts/creator-payouts/payout-ledger-service/transport/http"
)

func writePayoutsError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, payoutshttp.ErrorResponse{Code: code, Message: message})
}

func writePayoutsDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payoutserrors.ErrVideoNotFound):
		writePayoutsError(w, http.StatusNotFound, "video_not_found", err.Error())
	case errors.Is(err, payoutserrors.ErrCreatorNotFound):
		writePayoutsError(w, http.StatusNotFound, "creator_not_found", err.Error())
	case errors.Is(err, payoutserrors.ErrInvalidVideoInput):
		writePayoutsError(w, http.StatusBadRequest, "invalid_video_input", err.Error())
	case errors.Is(err, payoutserrors.ErrInvalidCreatorInput):
		writePayoutsError(w, http.StatusBadRequest, "invalid_creator_input", err.Error())
	case errors.Is(err, payoutserrors.ErrInvalidVideoURL):
		writePayoutsError(w, http.StatusBadRequest, "invalid_video_url", err.Error())
	case errors.Is(err, payoutserrors.ErrUnsupportedPlatform):
		writePayoutsError(w, http.StatusUnprocessableEntity, "unsupported_platform", err.Error())
	case errors.Is(err, payoutserrors.ErrRejectionReasonRequired):
		writePayoutsError(w, http.StatusBadRequest, "rejection_reason_required", err.Error())
	case errors.Is(err, payoutserrors.ErrInvalidListFilter):
		writePayoutsError(w, http.StatusBadRequest, "invalid_list_filter", err.Error())
	case errors.Is(err, payoutserrors.ErrUnknownRank):
		writePayoutsError(w, http.StatusBadRequest, "unknown_rank", err.Error())
	case errors.Is(err, payoutserrors.ErrDuplicateVideo):
		writePayoutsError(w, http.StatusConflict, "duplicate_video", err.Error())
	case errors.Is(err, payoutserrors.ErrAlreadyPaid):
		writePayoutsError(w, http.StatusConflict, "already_paid", err.Error())
	case errors.Is(err, payoutserrors.ErrAlreadyRejected):
		writePayoutsError(w, http.StatusConflict, "already_rejected", err.Error())
	case errors.Is(err, payoutserrors.ErrIdempotencyKeyConflict):
		writePayoutsError(w, http.StatusConflict, "idempotency_conflict", err.Error())
	case errors.Is(err, payoutserrors.ErrContentLookupUnavailable):
		writePayoutsError(w, http.StatusFailedDependency, "content_lookup_unavailable", err.Error())
	default:
		writePayoutsError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleSubmitVideo(w http.ResponseWriter, r *http.Request) {
	var req payoutshttp.SubmitVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePayoutsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.payouts.Handler.SubmitVideoHandler(
		r.Context(),
		r.Header.Get("Idempotency-Key"),
		req,
	)
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	status := http.StatusCreated
	if resp.Replayed {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleListVideos(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := payoutshttp.ListVideosRequest{
		Status:      query.Get("status"),
		CreatorName: query.Get("creator"),
	}

	if limitRaw := query.Get("limit"); limitRaw != "" {
		limit, err := strconv.Atoi(limitRaw)
		if err != nil {
			writePayoutsError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer")
			return
		}
		req.Limit = limit
	}

	resp, err := s.payouts.Handler.ListVideosHandler(r.Context(), req)
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetVideo(w http.ResponseWriter, r *http.Request) {
	resp, err := s.payouts.Handler.GetVideoHandler(r.Context(), r.PathValue("video_id"))
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteVideo(w http.ResponseWriter, r *http.Request) {
	if err := s.payouts.Handler.DeleteVideoHandler(r.Context(), r.PathValue("video_id")); err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleVideoHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := s.payouts.Handler.ViewHistoryHandler(r.Context(), r.PathValue("video_id"))
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateViews(w http.ResponseWriter, r *http.Request) {
	var req payoutshttp.UpdateViewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePayoutsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.payouts.Handler.UpdateViewsHandler(r.Context(), r.PathValue("video_id"), req)
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMarkPaid(w http.ResponseWriter, r *http.Request) {
	actorID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if actorID == "" {
		writePayoutsError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.payouts.Handler.MarkPaidHandler(r.Context(), r.PathValue("video_id"), actorID)
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRejectVideo(w http.ResponseWriter, r *http.Request) {
	actorID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if actorID == "" {
		writePayoutsError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req payoutshttp.RejectVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePayoutsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.payouts.Handler.RejectVideoHandler(r.Context(), r.PathValue("video_id"), actorID, req)
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCreators(w http.ResponseWriter, r *http.Request) {
	resp, err := s.payouts.Handler.ListCreatorsHandler(r.Context())
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCreator(w http.ResponseWriter, r *http.Request) {
	resp, err := s.payouts.Handler.GetCreatorHandler(r.Context(), r.PathValue("name"))
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLinkIdentity(w http.ResponseWriter, r *http.Request) {
	var req payoutshttp.LinkIdentityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePayoutsError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.payouts.Handler.LinkIdentityHandler(r.Context(), r.PathValue("name"), req)
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRateCard(w http.ResponseWriter, r *http.Request) {
	resp, err := s.payouts.Handler.RateCardHandler(r.Context())
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	req := payoutshttp.QuoteRequest{
		Views: r.URL.Query().Get("views"),
		Rank:  r.URL.Query().Get("rank"),
	}
	resp, err := s.payouts.Handler.QuoteHandler(r.Context(), req)
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	resp, err := s.payouts.Handler.StatsHandler(r.Context())
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleWeeklyReport(w http.ResponseWriter, r *http.Request) {
	resp, err := s.payouts.Handler.WeeklyReportHandler(r.Context())
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	rows, err := s.payouts.Handler.ExportCSVHandler(r.Context())
	if err != nil {
		writePayoutsDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="payout_report.csv"`)
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil && s.logger != nil {
		s.logger.Error("csv export write failed",
			"event", "http_csv_export_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
	}
}
