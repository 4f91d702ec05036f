package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewInvalidActionError creates a validation error for an unrecognized action tag
func NewInvalidActionError(action string) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: fmt.Sprintf("invalid action: %q", action),
		Code:    "INVALID_ACTION",
		Context: map[string]interface{}{
			"action": action,
		},
	}
}

// NewStoreError creates a new store error
func NewStoreError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStore,
		Message: fmt.Sprintf("store operation failed: %s", operation),
		Code:    "STORE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Message: fmt.Sprintf("operation timed out: %s", operation),
		Code:    "TIMEOUT",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// IsValidation reports whether err was caused by malformed input
func IsValidation(err error) bool {
	return IsErrorType(err, ErrorTypeValidation)
}

// IsStore reports whether err was caused by the backing store, timeouts included
func IsStore(err error) bool {
	return IsErrorType(err, ErrorTypeStore) || IsErrorType(err, ErrorTypeTimeout)
}

// userFriendly is implemented by causes that carry their own display text,
// such as field-level validation errors.
type userFriendly interface {
	GetUserFriendlyMessage() string
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation:
			var detail userFriendly
			if appErr.Cause != nil && errors.As(appErr.Cause, &detail) {
				return detail.GetUserFriendlyMessage()
			}
			return appErr.Message
		case ErrorTypeStore:
			return "A storage error occurred. Please try again."
		case ErrorTypeTimeout:
			return "The operation timed out. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation:
			return false // user errors
		case ErrorTypeStore, ErrorTypeTimeout:
			return true
		default:
			return true
		}
	}
	return true
}
