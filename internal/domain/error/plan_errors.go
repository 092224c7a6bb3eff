// Package error defines domain-specific errors for the DocuIntelli backend.
package error

import "errors"

// Plan / subscription domain errors.
var (
	// ErrInvalidPlanTier is returned when the tier is not a known plan.
	ErrInvalidPlanTier = errors.New("invalid plan tier")
)

// PlanErrorCode defines error codes for plan errors.
type PlanErrorCode string

const (
	ErrCodeInvalidPlanTier PlanErrorCode = "PLN-010001"
)

// PlanError represents a plan error with code and message.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlanError) Unwrap() error {
	return e.Err
}

// NewPlanError creates a new PlanError with the given code and message.
func NewPlanError(code PlanErrorCode, message string, err error) *PlanError {
	return &PlanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
