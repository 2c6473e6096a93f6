package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sherine-k/schedsim/pkg/simulation"
)

// SSE event names on the live stream.
const (
	sseTick   = "tick"
	sseFinish = "finish"
)

// handleLive runs a workload live and streams a snapshot per tick, then the
// final result. Closing the connection cancels the run.
// POST /api/v1/live
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}
	wl := decodeWorkload(w, r)
	if wl == nil {
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	ticks := make(chan simulation.Snapshot)
	finished := make(chan simulation.SimulationResult, 1)

	handle, err := s.runner.StartLive(ctx, wl,
		func(snap simulation.Snapshot) {
			select {
			case ticks <- snap:
			case <-ctx.Done():
			}
		},
		func(result simulation.SimulationResult) {
			finished <- result
		},
	)
	if err != nil {
		if !engineError(w, reqID, err) {
			respondError(w, reqID, http.StatusInternalServerError, &APIError{Code: ErrInternal, Message: err.Error()})
		}
		return
	}
	// Release a callback blocked on ticks before Stop takes the driver lock.
	defer func() {
		cancel()
		handle.Stop()
	}()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("live client disconnected", "request_id", reqID)
			return
		case snap := <-ticks:
			if err := sendSSEEvent(w, flusher, sseTick, snap); err != nil {
				s.logger.Debug("live client disconnected", "request_id", reqID, "error", err)
				return
			}
		case result := <-finished:
			if err := sendSSEEvent(w, flusher, sseFinish, result); err != nil {
				s.logger.Debug("live client disconnected", "request_id", reqID, "error", err)
			}
			return
		}
	}
}

func sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, jsonData)
	if err != nil {
		return err
	}

	flusher.Flush()
	return nil
}
