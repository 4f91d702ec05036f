package domain

import (
	"taskboard/internal/store"
)

// TaskMapper handles conversion between domain and store Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// FromStore converts a store row to a domain Task.
func (m *TaskMapper) FromStore(row store.TaskRow) Task {
	return Task{
		ID:          row.ID,
		Description: row.Description,
		Priority:    row.Priority,
	}
}

// FromStoreSlice converts store rows to domain Tasks, keeping their order.
func (m *TaskMapper) FromStoreSlice(rows []store.TaskRow) []*Task {
	tasks := make([]*Task, len(rows))
	for i, row := range rows {
		task := m.FromStore(row)
		tasks[i] = &task
	}
	return tasks
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
