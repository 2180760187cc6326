// Package server exposes report generation over HTTP
package server

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// GenerateFunc produces the Markdown report for the company at startURL
type GenerateFunc func(ctx context.Context, startURL string) (string, error)

// Server runs one report at a time, since all runs share a single browser tab
type Server struct {
	mu         sync.Mutex
	generate   GenerateFunc
	defaultURL string
	log        *zap.Logger
}

// New creates a server; requests without ?url= use defaultURL
func New(generate GenerateFunc, defaultURL string, log *zap.Logger) *Server {
	return &Server{
		generate:   generate,
		defaultURL: defaultURL,
		log:        log,
	}
}

// Handler returns the routed handler with access logging and panic recovery
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/report", s.ReportHandler).Methods("GET")
	router.HandleFunc("/healthz", HealthHandler).Methods("GET")

	stdLog := zap.NewStdLog(s.log)
	logged := handlers.CombinedLoggingHandler(stdLog.Writer(), router)
	return handlers.RecoveryHandler(handlers.RecoveryLogger(stdLog))(logged)
}

// ReportHandler generates and returns the Markdown report
func (s *Server) ReportHandler(w http.ResponseWriter, r *http.Request) {
	startURL := r.URL.Query().Get("url")
	if startURL == "" {
		startURL = s.defaultURL
	}

	if !strings.HasPrefix(startURL, "http://") && !strings.HasPrefix(startURL, "https://") {
		http.Error(w, "url must be an http(s) address", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	document, err := s.generate(r.Context(), startURL)
	s.mu.Unlock()

	if err != nil {
		s.log.Error("failed to generate report", zap.String("url", startURL), zap.Error(err))
		http.Error(w, "Error generating report", http.StatusInternalServerError)
		return
	}

	if err := writeEncoded(w, r, "text/markdown; charset=utf-8", []byte(document)); err != nil {
		s.log.Warn("failed to send report", zap.Error(err))
	}
}

// HealthHandler reports liveness
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}
