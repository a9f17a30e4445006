// internal/common/errors/errors.go
// Package errors provides standardized, user-facing structured errors.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeQuotaLimitReached ErrorCode = "QUOTA_LIMIT_REACHED"
	ErrCodeFeatureNotInPlan  ErrorCode = "FEATURE_NOT_IN_PLAN"
	ErrCodeQuotaCheckFailed  ErrorCode = "QUOTA_CHECK_FAILED"

	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	ErrCodeGenerationTimeout ErrorCode = "GENERATION_TIMEOUT"
	ErrCodeGenerationFailed  ErrorCode = "GENERATION_FAILED"

	ErrCodeExtractionFailed    ErrorCode = "EXTRACTION_FAILED"
	ErrCodeUnsupportedDocument ErrorCode = "UNSUPPORTED_DOCUMENT"

	ErrCodeHistoryWriteFailed  ErrorCode = "HISTORY_WRITE_FAILED"
	ErrCodeHistorySearchFailed ErrorCode = "HISTORY_SEARCH_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// QuotaError is a user-facing quota failure. The two conditions are
// distinguishable: a reached limit resets tomorrow, a missing feature needs
// a plan upgrade.
type QuotaError struct {
	Code    ErrorCode      `json:"code"`
	Plan    string         `json:"plan"`
	Action  string         `json:"action"`
	Limit   int            `json:"limit"`
	Usage   map[string]int `json:"usage"`
	Message string         `json:"message"`
}

func (e *QuotaError) Error() string {
	return fmt.Sprintf("QuotaError[%s]: plan=%s action=%s: %s", e.Code, e.Plan, e.Action, e.Message)
}

// LimitReached reports whether the error is the retry-tomorrow condition
// rather than the upgrade-required one.
func (e *QuotaError) LimitReached() bool {
	return e.Code == ErrCodeQuotaLimitReached
}

// NewQuotaLimitReachedError creates the daily-limit quota failure.
func NewQuotaLimitReachedError(plan, action string, limit int, usage map[string]int) *QuotaError {
	return &QuotaError{
		Code:    ErrCodeQuotaLimitReached,
		Plan:    plan,
		Action:  action,
		Limit:   limit,
		Usage:   usage,
		Message: fmt.Sprintf("daily %s limit of %d reached for plan %q, retry tomorrow", action, limit, plan),
	}
}

// NewFeatureNotInPlanError creates the upgrade-required quota failure.
func NewFeatureNotInPlanError(plan, action string, usage map[string]int) *QuotaError {
	return &QuotaError{
		Code:    ErrCodeFeatureNotInPlan,
		Plan:    plan,
		Action:  action,
		Usage:   usage,
		Message: fmt.Sprintf("action %q is not included in plan %q, upgrade required", action, plan),
	}
}

// AsQuotaError unwraps err into a QuotaError if it is one.
func AsQuotaError(err error) (*QuotaError, bool) {
	var qe *QuotaError
	if errors.As(err, &qe) {
		return qe, true
	}
	return nil, false
}

// NewQuotaCheckFailedError creates a retryable quota-store error.
func NewQuotaCheckFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeQuotaCheckFailed,
		Message:   "Usage store error during quota check",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestError creates a non-retryable request validation error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenerationTimeoutError creates a generation timeout error. Callers are
// expected to recover with the deterministic fallback rather than surface it.
func NewGenerationTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationTimeout,
		Message:   "Text generation timed out",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenerationFailedError creates a generation failure error.
func NewGenerationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationFailed,
		Message:   "Text generation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewExtractionFailedError creates a document extraction error.
func NewExtractionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeExtractionFailed,
		Message:   "Document text extraction failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnsupportedDocumentError creates an unsupported content-type error.
func NewUnsupportedDocumentError(contentType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedDocument,
		Message:   "Unsupported document type",
		Details:   fmt.Sprintf("contentType: %s", contentType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewHistoryWriteFailedError creates a retryable history store error.
func NewHistoryWriteFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeHistoryWriteFailed,
		Message:   "Analysis history insert failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewHistorySearchFailedError creates a retryable history search error.
func NewHistorySearchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeHistorySearchFailed,
		Message:   "Analysis history search failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
