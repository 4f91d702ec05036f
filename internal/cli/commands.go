package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/render"
	"taskboard/internal/services"
	"taskboard/internal/validation"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute prints every task in the requested format
func (c *ListCommand) Execute(ctx context.Context, format string) error {
	f, err := render.ParseFormat(format)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", errors.NewValidationError(err.Error(), err))
	}

	tasks, err := c.app.businessAPI.ListTasks(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}

	return render.Tasks(c.app.out, f, tasks)
}

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute adds a task. The description is the joined arguments; a nil
// priority is reported as missing.
func (c *AddCommand) Execute(ctx context.Context, args []string, priority *int64) error {
	description := strings.Join(args, " ")

	result, err := c.app.businessAPI.Submit(ctx, services.Payload{
		Action:      domain.ActionAdd.String(),
		Description: &description,
		Priority:    priority,
	})
	if err != nil {
		return c.app.errorHandler.Handle("add task", err)
	}

	fmt.Fprintf(c.app.out, "Added task %d: %s\n", result.TaskID, result.Task)
	return nil
}

// EditCommand handles the edit command
type EditCommand struct {
	app *App
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

// Execute replaces description and priority of the task whose id is args[0]
func (c *EditCommand) Execute(ctx context.Context, args []string, priority *int64) error {
	if len(args) == 0 {
		return c.app.errorHandler.Handle("edit task", requiredArg(validation.FieldID))
	}

	id, err := parseID(args[0])
	if err != nil {
		return c.app.errorHandler.Handle("edit task", err)
	}
	description := strings.Join(args[1:], " ")

	result, err := c.app.businessAPI.Submit(ctx, services.Payload{
		Action:      domain.ActionEdit.String(),
		ID:          &id,
		Description: &description,
		Priority:    priority,
	})
	if err != nil {
		return c.app.errorHandler.Handle("edit task", err)
	}

	if result.Affected == 0 {
		fmt.Fprintf(c.app.out, "No task with id %d; nothing changed\n", id)
		return nil
	}
	fmt.Fprintf(c.app.out, "Updated task %d\n", id)
	return nil
}

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute removes the task whose id is args[0]
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.app.errorHandler.Handle("delete task", requiredArg(validation.FieldID))
	}

	id, err := parseID(args[0])
	if err != nil {
		return c.app.errorHandler.Handle("delete task", err)
	}

	result, err := c.app.businessAPI.Submit(ctx, services.Payload{
		Action: domain.ActionDelete.String(),
		ID:     &id,
	})
	if err != nil {
		return c.app.errorHandler.Handle("delete task", err)
	}

	if result.Affected == 0 {
		fmt.Fprintf(c.app.out, "No task with id %d; nothing deleted\n", id)
		return nil
	}
	fmt.Fprintf(c.app.out, "Deleted task %d\n", id)
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		ve := validation.NewValidationError()
		ve.AddInvalidFormatError(validation.FieldID, raw, "integer")
		return 0, errors.NewValidationError("malformed task id", ve)
	}
	return id, nil
}

func requiredArg(field string) error {
	ve := validation.NewValidationError()
	ve.AddRequiredError(field)
	return errors.NewValidationError(field+" is required", ve)
}
