package validation

import (
	"strings"
	"testing"

	"taskboard/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidStringLength(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		min      int
		max      int
		expected bool
	}{
		{"Within range", "hello", 1, 10, true},
		{"Too short", "", 1, 10, false},
		{"Too long", strings.Repeat("a", 11), 1, 10, false},
		{"Counts characters not bytes", strings.Repeat("タ", 10), 1, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsValidStringLength(tt.input, tt.min, tt.max)
			if result != tt.expected {
				t.Errorf("IsValidStringLength(%q, %d, %d) = %v, expected %v", tt.input, tt.min, tt.max, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsValidPriority(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		priority int64
		expected bool
	}{
		{-1, false},
		{0, true},
		{3, true},
		{config.DefaultMaxPriority, true},
		{config.DefaultMaxPriority + 1, false},
	}

	for _, tt := range tests {
		if got := validator.IsValidPriority(tt.priority); got != tt.expected {
			t.Errorf("IsValidPriority(%d) = %v, expected %v", tt.priority, got, tt.expected)
		}
	}
}

func TestValidator_IsValidDescriptionLength_Unbounded(t *testing.T) {
	validator := NewValidator()

	if !validator.IsValidDescriptionLength(strings.Repeat("a", 10000)) {
		t.Errorf("descriptions should be unbounded by default")
	}
	if validator.IsValidDescriptionLength("  ") {
		t.Errorf("blank descriptions should still be rejected")
	}
}

func TestValidator_WithConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.DescriptionMaxLength = 5
	cfg.Validation.MaxPriority = 3

	validator := NewValidatorWithConfig(cfg)

	if !validator.IsValidDescriptionLength("short") {
		t.Errorf("5 characters should be accepted with max length 5")
	}
	if validator.IsValidDescriptionLength("longer") {
		t.Errorf("6 characters should be rejected with max length 5")
	}
	if validator.IsValidPriority(4) {
		t.Errorf("priority 4 should be rejected with max priority 3")
	}
}
