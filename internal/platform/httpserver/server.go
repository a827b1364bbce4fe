package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	promotionservice "payline/contexts/community-engagement/promotion-service"
	payoutledgerservice "payline/contexts/creator-payouts/payout-ledger-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "payline/internal/platform/httpserver/docs"
)

type Server struct {
	mux        *http.ServeMux
	logger     *slog.Logger
	addr       string
	payouts    payoutledgerservice.Module
	promotions promotionservice.Module
}

func New(
	payouts payoutledgerservice.Module,
	promotions promotionservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		payouts:    payouts,
		promotions: promotions,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/payouts/videos", s.handleSubmitVideo)
	s.mux.HandleFunc("GET /v1/payouts/videos", s.handleListVideos)
	s.mux.HandleFunc("GET /v1/payouts/videos/{video_id}", s.handleGetVideo)
	s.mux.HandleFunc("DELETE /v1/payouts/videos/{video_id}", s.handleDeleteVideo)
	s.mux.HandleFunc("GET /v1/payouts/videos/{video_id}/history", s.handleVideoHistory)
	s.mux.HandleFunc("POST /v1/payouts/videos/{video_id}/views", s.handleUpdateViews)
	s.mux.HandleFunc("POST /v1/payouts/videos/{video_id}/payment", s.handleMarkPaid)
	s.mux.HandleFunc("POST /v1/payouts/videos/{video_id}/rejection", s.handleRejectVideo)
	s.mux.HandleFunc("GET /v1/payouts/creators", s.handleListCreators)
	s.mux.HandleFunc("GET /v1/payouts/creators/{name}", s.handleGetCreator)
	s.mux.HandleFunc("PUT /v1/payouts/creators/{name}/identity", s.handleLinkIdentity)
	s.mux.HandleFunc("GET /v1/payouts/rate-card", s.handleRateCard)
	s.mux.HandleFunc("GET /v1/payouts/rate-card/quote", s.handleQuote)
	s.mux.HandleFunc("GET /v1/payouts/stats", s.handleStats)
	s.mux.HandleFunc("GET /v1/payouts/reports/weekly", s.handleWeeklyReport)
	s.mux.HandleFunc("GET /v1/payouts/export.csv", s.handleExportCSV)

	s.mux.HandleFunc("GET /v1/community/promotions", s.handleListPromotions)
	s.mux.HandleFunc("POST /v1/community/promotions", s.handleManualGrant)
	s.mux.HandleFunc("POST /v1/community/promotions/{grant_id}/ack", s.handleAckPromotion)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
