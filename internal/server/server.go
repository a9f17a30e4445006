// internal/server/server.go
// Package server is the HTTP adapter. It validates requests, runs the quota
// gate, and delegates to the match engine and its collaborators.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"skillmatch/internal/common/config"
	"skillmatch/internal/common/logger"
	"skillmatch/internal/genai"
	"skillmatch/internal/history"
	"skillmatch/internal/match"
	"skillmatch/internal/notify"
	"skillmatch/internal/quota"
)

// Server wires HTTP routes for the analysis API.
type Server struct {
	engine  *match.Engine
	gate    *quota.Gate
	writer  *genai.ResumeWriter
	mailer  *notify.ResumeMailer
	history *history.Service
	logger  logger.Logger
	cfg     config.ServerConfig
}

func New(
	engine *match.Engine,
	gate *quota.Gate,
	writer *genai.ResumeWriter,
	mailer *notify.ResumeMailer,
	hist *history.Service,
	cfg config.ServerConfig,
	log logger.Logger,
) *Server {
	return &Server{
		engine:  engine,
		gate:    gate,
		writer:  writer,
		mailer:  mailer,
		history: hist,
		logger:  log.WithFields(map[string]interface{}{"component": "http-server"}),
		cfg:     cfg,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.handleHealth, "healthz"))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/v1/analyze", MetricsMiddleware(s.handleAnalyze, "analyze"))
	mux.HandleFunc("/v1/suggest", MetricsMiddleware(s.handleSuggest, "suggest"))
	mux.HandleFunc("/v1/resume", MetricsMiddleware(s.handleResume, "resume"))
	mux.HandleFunc("/v1/extract", MetricsMiddleware(s.handleExtract, "extract"))
	mux.HandleFunc("/v1/quota", MetricsMiddleware(s.handleQuota, "quota"))
	mux.HandleFunc("/v1/history", MetricsMiddleware(s.handleHistory, "history"))
	mux.HandleFunc("/v1/history/search", MetricsMiddleware(s.handleHistorySearch, "history-search"))
}

// HTTPServer builds the configured http.Server for this API.
func (s *Server) HTTPServer() *http.Server {
	mux := http.NewServeMux()
	s.Register(mux)

	readTimeout := time.Duration(s.cfg.ReadTimeout) * time.Millisecond
	writeTimeout := time.Duration(s.cfg.WriteTimeout) * time.Millisecond
	if readTimeout <= 0 {
		readTimeout = 15 * time.Second
	}
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	return &http.Server{
		Addr:         s.cfg.Address,
		Handler:      mux,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// reserve runs the quota gate and writes the rejection response itself.
// Returns false when the request must not proceed.
func (s *Server) reserve(ctx context.Context, w http.ResponseWriter, plan, sessionID string, action quota.Action) bool {
	if s.gate == nil {
		return true
	}
	_, err := s.gate.Reserve(ctx, plan, sessionID, action)
	if err != nil {
		writeDomainError(w, err, string(action), plan)
		return false
	}
	return true
}
