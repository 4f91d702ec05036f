package validation

import (
	"strings"
	"unicode/utf8"

	"taskboard/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length, in characters, is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidDescriptionLength checks a description against the configured
// maximum. A maximum of 0 only requires a non-empty description.
func (v *Validator) IsValidDescriptionLength(description string) bool {
	limit := v.getDescriptionMaxLength()
	if limit <= 0 {
		return v.IsNonEmptyString(description)
	}
	return v.IsValidStringLength(description, 1, limit)
}

// IsValidPriority checks that a priority is non-negative and within the configured maximum
func (v *Validator) IsValidPriority(priority int64) bool {
	return priority >= 0 && priority <= v.getMaxPriority()
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

func (v *Validator) getDescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return config.DefaultDescriptionMaxLength
}

func (v *Validator) getMaxPriority() int64 {
	if v.config != nil {
		return v.config.Validation.MaxPriority
	}
	return config.DefaultMaxPriority
}
