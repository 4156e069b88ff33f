package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rgehrsitz/sustainsim/internal/config"
	"github.com/rgehrsitz/sustainsim/internal/domain"
	"github.com/rgehrsitz/sustainsim/internal/verdict"
)

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// PresetSummary describes one preset in GET /presets
type PresetSummary struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Simulation  domain.SimulationConfig `json:"simulation"`
	Ranges      config.ParameterRanges  `json:"ranges"`
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) presetsHandler(w http.ResponseWriter, _ *http.Request) {
	presets := config.Presets()
	out := make([]PresetSummary, 0, len(presets))
	for _, p := range presets {
		out = append(out, PresetSummary{
			Name:        p.Name,
			Description: p.Description,
			Simulation:  p.Simulation,
			Ranges:      p.Ranges,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) policiesHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Policies.Policies())
}

// simulateHandler overlays the JSON body on a preset and runs it. Policies
// in the body are registered for this request only.
func (s *Server) simulateHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("failed to read body: %w", err), "")
		return
	}

	preset := r.URL.Query().Get("preset")
	if preset == "" {
		preset = s.DefaultPreset
	}

	cfg, err := s.Parser.ParseJSON(body, preset)
	if err != nil {
		s.writeInputError(w, r, err)
		return
	}

	registry, err := s.requestRegistry(cfg.Policies)
	if err != nil {
		s.writeInputError(w, r, err)
		return
	}

	result, err := s.engine(registry).Simulate(cfg.Simulation)
	if err != nil {
		s.writeInputError(w, r, err)
		return
	}

	s.Logger.Debug("simulated",
		"request_id", RequestIDFrom(r.Context()),
		"preset", cfg.Preset,
		"final_score", result.FinalScore,
		"verdict", result.Verdict.Label)
	writeJSON(w, http.StatusOK, result)
}

// requestRegistry layers custom policies over the server's registry
func (s *Server) requestRegistry(custom []verdict.Policy) (*verdict.Registry, error) {
	if len(custom) == 0 {
		return s.Policies, nil
	}
	registry := verdict.NewRegistry()
	for _, p := range s.Policies.Policies() {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}
	for i, p := range custom {
		if err := registry.Register(p); err != nil {
			return nil, fmt.Errorf("policy %d: %w", i, err)
		}
	}
	return registry, nil
}

// writeInputError maps a rejected request to 400 for undecodable JSON and
// 422 for everything that decoded but failed validation
func (s *Server) writeInputError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		verr      *domain.ValidationError
	)

	status := http.StatusUnprocessableEntity
	field := ""
	switch {
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		status = http.StatusBadRequest
	case errors.As(err, &verr):
		field = verr.Field
	}

	s.Logger.Info("request rejected",
		"request_id", RequestIDFrom(r.Context()),
		"status", status,
		"error", err)
	writeError(w, status, err, field)
}

func writeError(w http.ResponseWriter, status int, err error, field string) {
	writeJSON(w, status, ErrorResponse{
		Error:     err.Error(),
		Field:     field,
		RequestID: w.Header().Get(RequestIDHeader),
	})
}
