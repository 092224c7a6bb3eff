// Package error defines domain-specific errors for the DocuIntelli backend.
package error

import "errors"

// Loan analysis domain errors.
var (
	// ErrInvalidLoanBalance is returned when the loan balance is zero or negative.
	ErrInvalidLoanBalance = errors.New("invalid loan balance")

	// ErrInvalidInterestRate is returned when the annual rate is negative.
	ErrInvalidInterestRate = errors.New("invalid interest rate")

	// ErrPaymentTooLow is returned when the monthly payment does not cover the
	// first month's interest, so the balance can never amortize.
	ErrPaymentTooLow = errors.New("monthly payment does not cover interest")
)

// LoanErrorCode defines error codes for loan analysis errors.
type LoanErrorCode string

const (
	ErrCodeInvalidLoanBalance  LoanErrorCode = "LON-010001"
	ErrCodeInvalidInterestRate LoanErrorCode = "LON-010002"
	ErrCodePaymentTooLow       LoanErrorCode = "LON-010003"
)

// LoanError represents a loan analysis error with code and message.
type LoanError struct {
	Code    LoanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LoanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LoanError) Unwrap() error {
	return e.Err
}

// NewLoanError creates a new LoanError with the given code and message.
func NewLoanError(code LoanErrorCode, message string, err error) *LoanError {
	return &LoanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
