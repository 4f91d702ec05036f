// Package repository exposes typed task operations over a Store and turns
// storage failures into application errors.
package repository

import (
	"context"
	stderrors "errors"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/store"
)

// Repository defines the task operations available to the services layer
type Repository interface {
	ListOrdered(ctx context.Context) ([]*domain.Task, error)
	Insert(ctx context.Context, description string, priority int64) (*domain.Task, error)
	UpdateByID(ctx context.Context, id int64, description string, priority int64) (int64, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
}

// TaskRepository implements Repository on top of a store.Store
type TaskRepository struct {
	store  store.Store
	mapper *domain.Mapper
}

// New creates a repository over the given store
func New(s store.Store) *TaskRepository {
	return &TaskRepository{
		store:  s,
		mapper: domain.NewMapper(),
	}
}

// ListOrdered returns all tasks, priority ascending then id ascending
func (r *TaskRepository) ListOrdered(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.store.ListTasks(ctx)
	if err != nil {
		return nil, translate("list tasks", err)
	}
	return r.mapper.Task.FromStoreSlice(rows), nil
}

// Insert creates a task and returns it with its assigned id
func (r *TaskRepository) Insert(ctx context.Context, description string, priority int64) (*domain.Task, error) {
	id, err := r.store.CreateTask(ctx, description, priority)
	if err != nil {
		return nil, translate("insert task", err)
	}

	task := domain.NewTask(description, priority)
	task.ID = id
	return &task, nil
}

// UpdateByID replaces description and priority of the task with the given id.
// It returns 0 when no such task exists.
func (r *TaskRepository) UpdateByID(ctx context.Context, id int64, description string, priority int64) (int64, error) {
	affected, err := r.store.UpdateTask(ctx, id, description, priority)
	if err != nil {
		return 0, translate("update task", err).WithContext("id", id)
	}
	return affected, nil
}

// DeleteByID removes the task with the given id. It returns 0 when no such
// task exists.
func (r *TaskRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	affected, err := r.store.DeleteTask(ctx, id)
	if err != nil {
		return 0, translate("delete task", err).WithContext("id", id)
	}
	return affected, nil
}

func translate(operation string, err error) *errors.AppError {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeoutError(operation, err)
	}
	return errors.NewStoreError(operation, err)
}
