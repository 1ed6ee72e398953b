// Package error defines domain-specific errors for the Pockets Tracker application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrInvalidBudgetAmount is returned when the monthly budget is negative.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrInvalidBudgetThreshold is returned when the threshold is outside (0, 1].
	ErrInvalidBudgetThreshold = errors.New("invalid budget threshold")
)

// BudgetErrorCode defines error codes for budget errors.
type BudgetErrorCode string

const (
	ErrCodeInvalidBudgetAmount    BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetThreshold BudgetErrorCode = "BDG-010002"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
