package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockResult implements sql.Result for testing
type MockResult struct {
	lastInsertID int64
	rowsAffected int64
	insertErr    error
	rowsErr      error
}

func (mr *MockResult) LastInsertId() (int64, error) {
	return mr.lastInsertID, mr.insertErr
}

func (mr *MockResult) RowsAffected() (int64, error) {
	return mr.rowsAffected, mr.rowsErr
}

func TestRowsAffected(t *testing.T) {
	tests := []struct {
		name        string
		result      *MockResult
		expected    int64
		expectError bool
	}{
		{
			name:     "One row affected",
			result:   &MockResult{rowsAffected: 1},
			expected: 1,
		},
		{
			name:     "No rows affected is not an error",
			result:   &MockResult{rowsAffected: 0},
			expected: 0,
		},
		{
			name:        "Driver cannot report rows affected",
			result:      &MockResult{rowsErr: errors.New("not supported")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := RowsAffected(tt.result, "update task")

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "update task")
				assert.Contains(t, err.Error(), "not supported")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, rows)
			}
		})
	}
}
