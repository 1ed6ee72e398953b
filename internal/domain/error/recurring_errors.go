// Package error defines domain-specific errors for the Pockets Tracker application.
package error

import "errors"

// Recurring template domain errors.
var (
	// ErrTemplateNotFound is returned when a recurring template is not found.
	ErrTemplateNotFound = errors.New("recurring template not found")

	// ErrInvalidTemplateAmount is returned when the template amount is not positive.
	ErrInvalidTemplateAmount = errors.New("invalid template amount")

	// ErrTemplateNameRequired is returned when the template name is empty.
	ErrTemplateNameRequired = errors.New("template name is required")

	// ErrTemplateStoreCorrupt is returned when the persisted template list
	// cannot be decoded. The collection is discarded, never partially trusted.
	ErrTemplateStoreCorrupt = errors.New("recurring template store is corrupt")
)

// RecurringErrorCode defines error codes for recurring template errors.
type RecurringErrorCode string

const (
	ErrCodeTemplateNotFound      RecurringErrorCode = "REC-010001"
	ErrCodeInvalidTemplateAmount RecurringErrorCode = "REC-010002"
	ErrCodeTemplateNameRequired  RecurringErrorCode = "REC-010003"
	ErrCodeMissingTemplateFields RecurringErrorCode = "REC-010004"
	ErrCodeTemplateStoreCorrupt  RecurringErrorCode = "REC-020001"
)

// RecurringError represents a recurring template error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
