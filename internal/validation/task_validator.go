package validation

import (
	"fmt"

	"taskboard/internal/config"
)

// Field names as they appear in mutation requests.
const (
	FieldAction      = "action"
	FieldID          = "id"
	FieldDescription = "description"
	FieldPriority    = "priority"
)

// TaskValidator validates the fields of task mutation requests. Absent
// fields are nil pointers.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateForAdd checks the fields of an add request and returns the
// trimmed description.
func (tv *TaskValidator) ValidateForAdd(description *string, priority *int64) (string, error) {
	validationError := NewValidationError()

	cleaned := tv.checkDescription(validationError, description)
	tv.checkPriority(validationError, priority)

	if validationError.HasErrors() {
		return "", validationError
	}
	return cleaned, nil
}

// ValidateForEdit checks the fields of an edit request and returns the
// trimmed description.
func (tv *TaskValidator) ValidateForEdit(id *int64, description *string, priority *int64) (string, error) {
	validationError := NewValidationError()

	tv.checkID(validationError, id)
	cleaned := tv.checkDescription(validationError, description)
	tv.checkPriority(validationError, priority)

	if validationError.HasErrors() {
		return "", validationError
	}
	return cleaned, nil
}

// ValidateForDelete checks the fields of a delete request
func (tv *TaskValidator) ValidateForDelete(id *int64) error {
	validationError := NewValidationError()

	tv.checkID(validationError, id)

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// checkID only requires presence. An id that matches no row is a no-op
// further down, whatever its value.
func (tv *TaskValidator) checkID(ve *ValidationError, id *int64) {
	if id == nil {
		ve.AddRequiredError(FieldID)
	}
}

func (tv *TaskValidator) checkDescription(ve *ValidationError, description *string) string {
	if description == nil {
		ve.AddRequiredError(FieldDescription)
		return ""
	}

	trimmed := tv.validator.TrimAndValidateString(*description)
	if !tv.validator.IsNonEmptyString(trimmed) {
		ve.AddError(FieldDescription, ErrorTypeRequired, "description must not be empty", *description)
		return ""
	}
	if !tv.validator.IsValidDescriptionLength(trimmed) {
		ve.AddInvalidLengthError(FieldDescription, trimmed, 1, tv.validator.getDescriptionMaxLength())
	}
	return trimmed
}

func (tv *TaskValidator) checkPriority(ve *ValidationError, priority *int64) {
	if priority == nil {
		ve.AddRequiredError(FieldPriority)
		return
	}
	if *priority < 0 {
		ve.AddInvalidValueError(FieldPriority, *priority, "must not be negative")
		return
	}
	if !tv.validator.IsValidPriority(*priority) {
		ve.AddInvalidRangeError(FieldPriority, *priority, fmt.Sprintf("must be at most %d", tv.validator.getMaxPriority()))
	}
}
