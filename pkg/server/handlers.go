package server

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/sherine-k/schedsim/pkg/config"
	"github.com/sherine-k/schedsim/pkg/history"
	"github.com/sherine-k/schedsim/pkg/simulation"
)

type healthResponse struct {
	Status    string `json:"status"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
	History   string `json:"history"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	hist := "enabled"
	if s.stats == nil {
		hist = "disabled"
	}
	respondOK(w, RequestIDFromContext(r.Context()), healthResponse{
		Status:    "healthy",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		History:   hist,
	})
}

// GET /api/v1/algorithms
func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	respondOK(w, RequestIDFromContext(r.Context()), simulation.Policies())
}

// decodeWorkload reads a JSON workload body. It writes the error response
// itself and returns nil on failure.
func decodeWorkload(w http.ResponseWriter, r *http.Request) *config.Workload {
	var wl config.Workload
	if err := json.NewDecoder(r.Body).Decode(&wl); err != nil {
		respondError(w, RequestIDFromContext(r.Context()), http.StatusBadRequest, &APIError{
			Code:    ErrValidation,
			Message: "invalid JSON body: " + err.Error(),
		})
		return nil
	}
	return &wl
}

// POST /api/v1/simulate
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	wl := decodeWorkload(w, r)
	if wl == nil {
		return
	}

	result, err := s.runner.Simulate(r.Context(), wl)
	if err != nil {
		if !engineError(w, reqID, err) {
			respondError(w, reqID, http.StatusInternalServerError, &APIError{Code: ErrInternal, Message: err.Error()})
		}
		return
	}
	respondOK(w, reqID, result)
}

type statsResponse struct {
	ByAlgorithm []history.Count `json:"by_algorithm"`
	ByDay       []history.Count `json:"by_day"`
}

// GET /api/v1/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	if s.stats == nil {
		respondError(w, reqID, http.StatusServiceUnavailable, &APIError{
			Code:    ErrUnavailable,
			Message: "run history is disabled",
		})
		return
	}

	byAlgo, err := s.stats.CountsByAlgorithm(r.Context())
	if err != nil {
		s.logger.Error("counts by algorithm", "error", err)
		respondError(w, reqID, http.StatusInternalServerError, &APIError{Code: ErrInternal, Message: err.Error()})
		return
	}
	byDay, err := s.stats.CountsByDay(r.Context())
	if err != nil {
		s.logger.Error("counts by day", "error", err)
		respondError(w, reqID, http.StatusInternalServerError, &APIError{Code: ErrInternal, Message: err.Error()})
		return
	}
	respondOK(w, reqID, statsResponse{ByAlgorithm: byAlgo, ByDay: byDay})
}
