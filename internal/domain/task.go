package domain

import "fmt"

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64  `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	Priority    int64  `json:"priority" yaml:"priority"`
}

// NewTask creates a new Task with the given description and priority.
func NewTask(description string, priority int64) Task {
	return Task{
		Description: description,
		Priority:    priority,
	}
}

// String returns the task for display purposes.
func (t Task) String() string {
	return fmt.Sprintf("[%d] %s", t.Priority, t.Description)
}
