package services

import (
	"context"
	"sort"
	"sync"

	"taskboard/internal/domain"
)

// fakeRepository keeps tasks in memory, counts calls and can be told to fail
type fakeRepository struct {
	mu     sync.Mutex
	tasks  map[int64]domain.Task
	nextID int64

	calls map[string]int
	err   error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		tasks:  make(map[int64]domain.Task),
		nextID: 1,
		calls:  make(map[string]int),
	}
}

func (f *fakeRepository) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeRepository) ListOrdered(ctx context.Context) ([]*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["ListOrdered"]++

	if f.err != nil {
		return nil, f.err
	}

	result := make([]*domain.Task, 0, len(f.tasks))
	for _, task := range f.tasks {
		task := task
		result = append(result, &task)
	}
	sort.Slice(result, func(i, j int) bool { return listedBefore(result[i], result[j]) })
	return result, nil
}

func (f *fakeRepository) Insert(ctx context.Context, description string, priority int64) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["Insert"]++

	if f.err != nil {
		return nil, f.err
	}

	task := domain.NewTask(description, priority)
	task.ID = f.nextID
	f.nextID++
	f.tasks[task.ID] = task
	return &task, nil
}

func (f *fakeRepository) UpdateByID(ctx context.Context, id int64, description string, priority int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["UpdateByID"]++

	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.tasks[id]; !ok {
		return 0, nil
	}
	f.tasks[id] = domain.Task{ID: id, Description: description, Priority: priority}
	return 1, nil
}

func (f *fakeRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["DeleteByID"]++

	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.tasks[id]; !ok {
		return 0, nil
	}
	delete(f.tasks, id)
	return 1, nil
}

// listedBefore is the listing order: priority ascending, then id ascending
func listedBefore(a, b *domain.Task) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.ID < b.ID
}
