package cli

import (
	"bytes"
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/services"
)

// failingBusinessAPI returns err from every call
type failingBusinessAPI struct {
	err error
}

func (f failingBusinessAPI) Submit(ctx context.Context, payload services.Payload) (*services.Result, error) {
	return nil, f.err
}

func (f failingBusinessAPI) AddTask(ctx context.Context, description string, priority int64) (*domain.Task, error) {
	return nil, f.err
}

func (f failingBusinessAPI) EditTask(ctx context.Context, id int64, description string, priority int64) (int64, error) {
	return 0, f.err
}

func (f failingBusinessAPI) DeleteTask(ctx context.Context, id int64) (int64, error) {
	return 0, f.err
}

func (f failingBusinessAPI) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return nil, f.err
}

func (f failingBusinessAPI) SeedSampleTasks(ctx context.Context) (int, error) {
	return 0, f.err
}

func setupTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	board := setupTestBoard(t)
	var out bytes.Buffer
	return NewApp(board.businessAPI, config.NewConfig(), &out), &out
}

func TestAddCommand_Execute(t *testing.T) {
	app, out := setupTestApp(t)
	priority := int64(3)

	err := NewAddCommand(app).Execute(context.Background(), []string{"  Water", "plants  "}, &priority)
	require.NoError(t, err)
	assert.Equal(t, "Added task 1: [3] Water plants\n", out.String())
}

func TestListCommand_Empty(t *testing.T) {
	app, out := setupTestApp(t)

	require.NoError(t, NewListCommand(app).Execute(context.Background(), "table"))
	assert.Contains(t, out.String(), "No tasks.")
}

func TestCommands_StoreFailure(t *testing.T) {
	storeErr := errors.NewStoreError("insert task", stderrors.New("disk full"))
	var out bytes.Buffer
	app := NewApp(failingBusinessAPI{err: storeErr}, nil, &out)
	ctx := context.Background()
	priority := int64(1)

	tests := []struct {
		name string
		run  func() error
	}{
		{"list", func() error { return NewListCommand(app).Execute(ctx, "json") }},
		{"add", func() error { return NewAddCommand(app).Execute(ctx, []string{"x"}, &priority) }},
		{"edit", func() error { return NewEditCommand(app).Execute(ctx, []string{"1", "x"}, &priority) }},
		{"delete", func() error { return NewDeleteCommand(app).Execute(ctx, []string{"1"}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "A storage error occurred")
			assert.NotContains(t, err.Error(), "disk full")
			assert.Equal(t, 1, NewErrorHandler().ExitCode(err))
		})
	}
	assert.Empty(t, out.String())
}
