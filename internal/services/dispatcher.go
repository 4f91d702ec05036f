package services

import (
	"context"
	"fmt"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/logging"
	"taskboard/internal/repository"
	"taskboard/internal/validation"
)

// dispatcherImpl implements the Dispatcher interface
type dispatcherImpl struct {
	repo          repository.Repository
	taskValidator *validation.TaskValidator
}

// NewDispatcher creates a new Dispatcher. A nil validator uses the default limits.
func NewDispatcher(repo repository.Repository, taskValidator *validation.TaskValidator) Dispatcher {
	if taskValidator == nil {
		taskValidator = validation.NewTaskValidator()
	}
	return &dispatcherImpl{
		repo:          repo,
		taskValidator: taskValidator,
	}
}

// Decode validates the payload for its action and builds the matching variant
func (d *dispatcherImpl) Decode(payload Payload) (domain.Action, error) {
	kind, ok := domain.ParseActionKind(payload.Action)
	if !ok {
		return nil, errors.NewInvalidActionError(payload.Action)
	}

	switch kind {
	case domain.ActionAdd:
		description, err := d.taskValidator.ValidateForAdd(payload.Description, payload.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid add request", err).WithContext("action", kind.String())
		}
		return domain.Add{Description: description, Priority: *payload.Priority}, nil

	case domain.ActionEdit:
		description, err := d.taskValidator.ValidateForEdit(payload.ID, payload.Description, payload.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid edit request", err).WithContext("action", kind.String())
		}
		return domain.Edit{ID: *payload.ID, Description: description, Priority: *payload.Priority}, nil

	default:
		if err := d.taskValidator.ValidateForDelete(payload.ID); err != nil {
			return nil, errors.NewValidationError("invalid delete request", err).WithContext("action", kind.String())
		}
		return domain.Delete{ID: *payload.ID}, nil
	}
}

// Execute runs exactly one repository call for the action
func (d *dispatcherImpl) Execute(ctx context.Context, action domain.Action) (*Result, error) {
	switch a := action.(type) {
	case domain.Add:
		task, err := d.repo.Insert(ctx, a.Description, a.Priority)
		if err != nil {
			return nil, err
		}
		logging.Debugf("added task %d\n", task.ID)
		return &Result{Action: domain.ActionAdd, TaskID: task.ID, Affected: 1, Task: task}, nil

	case domain.Edit:
		affected, err := d.repo.UpdateByID(ctx, a.ID, a.Description, a.Priority)
		if err != nil {
			return nil, err
		}
		logging.Debugf("edited task %d (%d rows)\n", a.ID, affected)
		return &Result{Action: domain.ActionEdit, TaskID: a.ID, Affected: affected}, nil

	case domain.Delete:
		affected, err := d.repo.DeleteByID(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		logging.Debugf("deleted task %d (%d rows)\n", a.ID, affected)
		return &Result{Action: domain.ActionDelete, TaskID: a.ID, Affected: affected}, nil

	default:
		return nil, errors.NewInvalidActionError(fmt.Sprintf("%T", action))
	}
}

// Dispatch validates the payload completely before the repository is touched
func (d *dispatcherImpl) Dispatch(ctx context.Context, payload Payload) (*Result, error) {
	action, err := d.Decode(payload)
	if err != nil {
		return nil, err
	}
	return d.Execute(ctx, action)
}
