// Package server exposes sentiment scoring over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/drankou/vader-sentiment/internal/batch"
	"github.com/drankou/vader-sentiment/internal/report"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Options configures the scoring service.
type Options struct {
	// Workers bounds concurrent scoring in the batch endpoint.
	Workers int
	// MaxBodyBytes caps request bodies; larger requests get 413.
	MaxBodyBytes int64
	Logger       *log.Logger
}

// Server scores texts sent as JSON.
type Server struct {
	scorer batch.Scorer
	opts   Options
	logger *log.Logger
}

type scoreRequest struct {
	Text string `json:"text"`
}

type batchRequest struct {
	Texts []string `json:"texts"`
}

type batchResponse struct {
	Results []report.Result `json:"results"`
}

func New(scorer batch.Scorer, opts Options) *Server {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 1 << 20
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{scorer: scorer, opts: opts, logger: logger}
}

// Handler returns the routed handler with request ID, recovery and
// access logging middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/score", s.handleScore)
		r.Post("/score/batch", s.handleBatch)
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !s.decode(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, report.NewResult(req.Text, s.scorer.PolarityScores(req.Text)))
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !s.decode(w, r, &req) {
		return
	}

	scores, err := batch.Score(r.Context(), s.scorer, req.Texts, s.opts.Workers)
	if err != nil {
		s.logger.Warn("batch scoring aborted", "err", err, "texts", len(req.Texts))
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	results := make([]report.Result, len(scores))
	for i, sc := range scores {
		results[i] = report.NewResult(req.Texts[i], sc)
	}
	writeJSON(w, http.StatusOK, batchResponse{Results: results})
}

// decode reads a JSON body into v, writing the error response itself
// when it fails.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return false
		}
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
