package services

import (
	"context"

	"taskboard/internal/domain"
)

// Payload is a raw mutation request as decoded from a form or JSON body.
// Pointer fields distinguish "absent" from a zero value.
type Payload struct {
	Action      string  `json:"action" yaml:"action"`
	ID          *int64  `json:"id,omitempty" yaml:"id,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	Priority    *int64  `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// Result reports what an applied action did
type Result struct {
	Action domain.ActionKind `json:"action"`
	// TaskID is the id assigned by an add, or the id targeted by edit/delete.
	TaskID int64 `json:"id"`
	// Affected is the number of rows changed; 0 for an edit or delete of an
	// unknown id.
	Affected int64 `json:"affected"`
	// Task is set for add only.
	Task *domain.Task `json:"task,omitempty"`
}

// Dispatcher interprets mutation requests and applies them to the repository
type Dispatcher interface {
	// Decode validates a payload and turns it into a typed action. It never
	// touches the repository.
	Decode(payload Payload) (domain.Action, error)

	// Execute applies an already decoded action.
	Execute(ctx context.Context, action domain.Action) (*Result, error)

	// Dispatch decodes then executes.
	Dispatch(ctx context.Context, payload Payload) (*Result, error)
}

// ListingQuery produces the ordered view of all tasks
type ListingQuery interface {
	List(ctx context.Context) ([]*domain.Task, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	Dispatcher Dispatcher
	Listing    ListingQuery
}
