// Package api serves the simulator over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/rgehrsitz/sustainsim/internal/calculation"
	"github.com/rgehrsitz/sustainsim/internal/config"
	"github.com/rgehrsitz/sustainsim/internal/logging"
	"github.com/rgehrsitz/sustainsim/internal/verdict"
)

const (
	// maxBodyBytes caps a /simulate request body
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Server answers simulation requests. DefaultPreset applies when neither the
// query string nor the body names one.
type Server struct {
	Parser        *config.InputParser
	Policies      *verdict.Registry
	DefaultPreset string
	Logger        *slog.Logger
}

// NewServer creates a server over the given policy registry. A nil registry
// means the built-ins only.
func NewServer(policies *verdict.Registry, logger *slog.Logger) *Server {
	if policies == nil {
		policies = verdict.NewRegistry()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		Parser:        config.NewInputParser(),
		Policies:      policies,
		DefaultPreset: config.DefaultPreset,
		Logger:        logger,
	}
}

// NewRouter registers every route
func NewRouter(s *Server) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	r.HandleFunc("/presets", s.presetsHandler).Methods(http.MethodGet)
	r.HandleFunc("/policies", s.policiesHandler).Methods(http.MethodGet)
	r.HandleFunc("/simulate", s.simulateHandler).Methods(http.MethodPost)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("not found"), "")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"), "")
	})

	return r
}

// Handler wraps the router with request ids, access logging to accessLog
// and panic recovery
func (s *Server) Handler(accessLog io.Writer) http.Handler {
	router := NewRouter(s)
	logged := handlers.LoggingHandler(accessLog, router)
	recovered := handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{s.Logger}))(logged)
	return withRequestID(recovered)
}

// Serve runs an HTTP server on addr until ctx is cancelled, then shuts it
// down gracefully
func (s *Server) Serve(ctx context.Context, addr string, accessLog io.Writer) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(accessLog),
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.Logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) engine(policies *verdict.Registry) *calculation.SimulationEngine {
	engine := calculation.NewSimulationEngineWithPolicies(policies)
	engine.SetLogger(logging.NewAdapter(s.Logger))
	return engine
}

type recoveryLogger struct {
	l *slog.Logger
}

func (r recoveryLogger) Println(args ...interface{}) {
	r.l.Error("panic in handler", "detail", args)
}

// writeJSON encodes v before touching the response so an encoding failure
// can still be reported as a 500
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(ErrorResponse{
			Error:     fmt.Sprintf("failed to encode response: %v", err),
			RequestID: w.Header().Get(RequestIDHeader),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
