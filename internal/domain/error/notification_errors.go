// Package error defines domain-specific errors for the Pockets Tracker application.
package error

import "errors"

// Notification domain errors.
var (
	// ErrNotificationScheduleFailed is returned when a notification cannot be queued.
	ErrNotificationScheduleFailed = errors.New("failed to schedule notification")

	// ErrPermanentDeliveryFailure is returned for delivery errors that will not
	// succeed on retry (e.g. rejected recipient).
	ErrPermanentDeliveryFailure = errors.New("permanent notification delivery failure")

	// ErrInvalidReminderTime is returned when a reminder time is out of range.
	ErrInvalidReminderTime = errors.New("invalid reminder time")
)

// NotificationErrorCode defines error codes for notification errors.
type NotificationErrorCode string

const (
	ErrCodeScheduleFailed           NotificationErrorCode = "NTF-010001"
	ErrCodePermanentDeliveryFailure NotificationErrorCode = "NTF-020001"
	ErrCodeTransientDeliveryFailure NotificationErrorCode = "NTF-020002"
	ErrCodeInvalidReminderTime      NotificationErrorCode = "NTF-030001"
)

// NotificationError represents a notification error with code and message.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
