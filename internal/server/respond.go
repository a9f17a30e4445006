// internal/server/respond.go
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "skillmatch/internal/common/errors"
	"skillmatch/internal/common/metrics"
)

type errorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// writeDomainError maps structured application errors onto HTTP statuses.
// Quota failures distinguish retry-tomorrow (429) from upgrade-required (403).
func writeDomainError(w http.ResponseWriter, err error, action, plan string) {
	if qe, ok := apperrors.AsQuotaError(err); ok {
		status := http.StatusForbidden
		reason := "feature_not_in_plan"
		if qe.LimitReached() {
			status = http.StatusTooManyRequests
			reason = "limit_reached"
		}
		metrics.QuotaRejections.WithLabelValues(plan, action, reason).Inc()
		writeJSON(w, status, errorResponse{
			Code:    string(qe.Code),
			Message: qe.Message,
			Details: map[string]interface{}{
				"plan":   qe.Plan,
				"action": qe.Action,
				"limit":  qe.Limit,
				"usage":  qe.Usage,
			},
		})
		return
	}

	var se *apperrors.StandardError
	if errors.As(err, &se) {
		writeError(w, statusFor(se.Code), string(se.Code), se.Message)
		return
	}

	writeError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
}

func statusFor(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnsupportedDocument:
		return http.StatusUnsupportedMediaType
	case apperrors.ErrCodeExtractionFailed:
		return http.StatusUnprocessableEntity
	case apperrors.ErrCodeQuotaCheckFailed:
		return http.StatusServiceUnavailable
	case apperrors.ErrCodeHistorySearchFailed, apperrors.ErrCodeHistoryWriteFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
