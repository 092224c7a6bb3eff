// Package error defines domain-specific errors for the DocuIntelli backend.
package error

import "errors"

// Insight domain errors.
var (
	// ErrInsightServiceUnavailable is returned when the AI service is not configured.
	ErrInsightServiceUnavailable = errors.New("insight service unavailable")

	// ErrInsightGenerationFailed is returned when the AI service fails to produce insights.
	ErrInsightGenerationFailed = errors.New("insight generation failed")
)

// InsightErrorCode defines error codes for insight errors.
type InsightErrorCode string

const (
	ErrCodeInsightUnavailable      InsightErrorCode = "INS-010001"
	ErrCodeInsightGenerationFailed InsightErrorCode = "INS-020001"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
