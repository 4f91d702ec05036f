package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name        string
		description string
		priority    int64
		expected    Task
	}{
		{
			name:        "creates task with description and priority",
			description: "Buy milk",
			priority:    2,
			expected:    Task{Description: "Buy milk", Priority: 2},
		},
		{
			name:        "creates task with empty description",
			description: "",
			priority:    0,
			expected:    Task{Description: "", Priority: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewTask(tt.description, tt.priority)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTask_String(t *testing.T) {
	task := Task{ID: 7, Description: "Write report", Priority: 3}
	assert.Equal(t, "[3] Write report", task.String())
}

func TestParseActionKind(t *testing.T) {
	tests := []struct {
		tag    string
		want   ActionKind
		wantOK bool
	}{
		{"add", ActionAdd, true},
		{"edit", ActionEdit, true},
		{"delete", ActionDelete, true},
		{"ADD", "", false},
		{"foo", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, ok := ParseActionKind(tt.tag)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAction_Kind(t *testing.T) {
	var actions = []Action{
		Add{Description: "a", Priority: 1},
		Edit{ID: 1, Description: "b", Priority: 2},
		Delete{ID: 1},
	}

	assert.Equal(t, ActionAdd, actions[0].Kind())
	assert.Equal(t, ActionEdit, actions[1].Kind())
	assert.Equal(t, ActionDelete, actions[2].Kind())
}
