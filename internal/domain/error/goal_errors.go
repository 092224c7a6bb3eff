// Package error defines domain-specific errors for the DocuIntelli backend.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidGoalType is returned when the goal type is not one of the known types.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidGoalPeriod is returned when the period is invalid for a spending-limit goal.
	ErrInvalidGoalPeriod = errors.New("invalid goal period")

	// ErrUnauthorizedGoalAccess is returned when the user does not own the goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")

	// ErrGoalNotActive is returned when an operation requires an active goal.
	ErrGoalNotActive = errors.New("goal is not active")

	// ErrRecalculationInProgress is returned when another recalculation already
	// holds the per-user lock.
	ErrRecalculationInProgress = errors.New("recalculation already in progress for user")

	// ErrActivityNotFound is returned when a manual activity entry is not found.
	ErrActivityNotFound = errors.New("manual activity not found")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeInvalidGoalType        GoalErrorCode = "GOL-010002"
	ErrCodeInvalidTargetAmount    GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalPeriod      GoalErrorCode = "GOL-010004"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010005"
	ErrCodeGoalNotActive          GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010007"
	ErrCodeActivityNotFound       GoalErrorCode = "GOL-010008"

	// Concurrency errors (02XXXX)
	ErrCodeRecalculationInProgress GoalErrorCode = "GOL-020001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
