package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sherine-k/schedsim/pkg/simulation"
)

// ErrorCode is a structured API error code.
type ErrorCode string

const (
	ErrValidation           ErrorCode = "VALIDATION_ERROR"
	ErrUnsupportedAlgorithm ErrorCode = "UNSUPPORTED_ALGORITHM"
	ErrUnavailable          ErrorCode = "UNAVAILABLE"
	ErrInternal             ErrorCode = "INTERNAL_ERROR"
)

// APIError is the error half of the response envelope.
type APIError struct {
	Code    ErrorCode               `json:"code"`
	Message string                  `json:"message"`
	Details []simulation.FieldError `json:"details,omitempty"`
}

// Response is the envelope wrapping every JSON response.
type Response struct {
	Status    string    `json:"status"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
}

func requestID() string {
	return "req_" + uuid.New().String()[:8]
}

func respondOK(w http.ResponseWriter, reqID string, data any) {
	respondJSON(w, http.StatusOK, reqID, data, nil)
}

func respondError(w http.ResponseWriter, reqID string, status int, apiErr *APIError) {
	respondJSON(w, status, reqID, nil, apiErr)
}

func respondJSON(w http.ResponseWriter, status int, reqID string, data any, apiErr *APIError) {
	resp := Response{
		RequestID: reqID,
		Timestamp: time.Now().UTC(),
		Data:      data,
		Error:     apiErr,
	}
	if apiErr != nil {
		resp.Status = "error"
	} else {
		resp.Status = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// engineError maps an error from the engines to a 400 response. It returns
// false for anything else.
func engineError(w http.ResponseWriter, reqID string, err error) bool {
	var verr *simulation.ValidationError
	if errors.As(err, &verr) {
		respondError(w, reqID, http.StatusBadRequest, &APIError{
			Code:    ErrValidation,
			Message: "invalid input",
			Details: verr.Problems,
		})
		return true
	}
	var unsupported *simulation.UnsupportedAlgorithmError
	if errors.As(err, &unsupported) {
		respondError(w, reqID, http.StatusBadRequest, &APIError{
			Code:    ErrUnsupportedAlgorithm,
			Message: unsupported.Error(),
		})
		return true
	}
	return false
}
