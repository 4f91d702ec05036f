package cli

import (
	"fmt"

	"taskboard/internal/errors"
	"taskboard/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// CommandError carries the message shown to the user while keeping the
// original error reachable through errors.As/Is.
type CommandError struct {
	message string
	err     error
}

func (e *CommandError) Error() string {
	return e.message
}

func (e *CommandError) Unwrap() error {
	return e.err
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	return &CommandError{
		message: fmt.Sprintf("failed to %s: %s", operation, eh.message(err)),
		err:     err,
	}
}

func (eh *ErrorHandler) message(err error) string {
	// Bare field errors, e.g. from argument parsing
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return validationErr.GetUserFriendlyMessage()
	}
	return errors.GetUserMessage(err)
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsValidation(err)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// ExitCode maps an error onto the process exit status: 0 for success, 2 for
// bad input, 1 for everything else.
func (eh *ErrorHandler) ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case eh.IsValidationError(err):
		return 2
	default:
		return 1
	}
}
