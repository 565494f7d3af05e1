// Package server exposes the analysis engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/value-edge/internal/analysis"
	"github.com/yourusername/value-edge/internal/config"
	"github.com/yourusername/value-edge/internal/metrics"
	"github.com/yourusername/value-edge/internal/models"
	"github.com/yourusername/value-edge/internal/odds"
)

// maxRequestBody caps analyze request bodies at 64 KiB.
const maxRequestBody = 64 << 10

// Server serves the analysis API.
type Server struct {
	analyzer *analysis.Analyzer
	cfg      *config.ServerConfig
	metrics  *config.MetricsConfig
	logger   *logrus.Logger
	server   *http.Server
}

// New creates an API server around an analyzer.
func New(analyzer *analysis.Analyzer, cfg *config.ServerConfig, metricsCfg *config.MetricsConfig, logger *logrus.Logger) *Server {
	return &Server{
		analyzer: analyzer,
		cfg:      cfg,
		metrics:  metricsCfg,
		logger:   logger,
	}
}

// Handler builds the HTTP routing table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/analyze", s.handleAnalyze)
	mux.HandleFunc("/healthz", s.handleHealthz)
	if s.metrics != nil && s.metrics.Enabled {
		mux.Handle(s.metrics.Path, metrics.Handler())
	}
	return mux
}

// Start runs the server until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	timeout := time.Duration(s.cfg.TimeoutSeconds) * time.Second

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.WithError(err).Error("API server shutdown error")
		}
	}()

	s.logger.WithField("port", s.cfg.Port).Info("Analysis API server starting")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// analyzeRequest is the wire format of an analysis request. Odds arrive as
// strings so callers can quote decimal, fractional or American prices.
type analyzeRequest struct {
	Team1             string `json:"team1"`
	Team2             string `json:"team2"`
	Team1Odds         string `json:"team1_odds"`
	Team2Odds         string `json:"team2_odds"`
	DrawOdds          string `json:"draw_odds,omitempty"`
	Team1Form         string `json:"team1_form,omitempty"`
	Team1Record       string `json:"team1_record,omitempty"`
	Team2Form         string `json:"team2_form,omitempty"`
	Team2Record       string `json:"team2_record,omitempty"`
	HeadToHead        string `json:"head_to_head,omitempty"`
	HomeTeam          string `json:"home_team,omitempty"`
	AdditionalContext string `json:"additional_context,omitempty"`
}

// errorResponse is the wire format of a failed request.
type errorResponse struct {
	Error      string   `json:"error"`
	Violations []string `json:"violations,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	var req analyzeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err), nil)
		return
	}

	input, err := req.toMatchInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result, err := s.analyzer.AnalyzeMatch(r.Context(), input)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, "invalid match input", verr.Violations)
		case errors.Is(err, models.ErrInvalidOdds):
			writeError(w, http.StatusBadRequest, err.Error(), nil)
		default:
			s.logger.WithError(err).Error("Analysis failed")
			writeError(w, http.StatusInternalServerError, "analysis failed", nil)
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// toMatchInput parses the quoted odds strings into the engine's input type.
func (r analyzeRequest) toMatchInput() (models.MatchInput, error) {
	var input models.MatchInput

	team1Odds, err := odds.ParseQuoted(r.Team1Odds)
	if err != nil {
		return input, fmt.Errorf("team1_odds: %w", err)
	}
	team2Odds, err := odds.ParseQuoted(r.Team2Odds)
	if err != nil {
		return input, fmt.Errorf("team2_odds: %w", err)
	}

	quote := models.OddsQuote{Team1: team1Odds, Team2: team2Odds}
	if r.DrawOdds != "" {
		drawOdds, err := odds.ParseQuoted(r.DrawOdds)
		if err != nil {
			return input, fmt.Errorf("draw_odds: %w", err)
		}
		quote.Draw = &drawOdds
	}

	return models.MatchInput{
		Team1:             r.Team1,
		Team2:             r.Team2,
		Odds:              quote,
		Team1Signal:       models.TeamSignal{RecentForm: r.Team1Form, Record: r.Team1Record},
		Team2Signal:       models.TeamSignal{RecentForm: r.Team2Form, Record: r.Team2Record},
		HeadToHead:        r.HeadToHead,
		HomeTeam:          r.HomeTeam,
		AdditionalContext: r.AdditionalContext,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string, violations []string) {
	writeJSON(w, status, errorResponse{Error: message, Violations: violations})
}
