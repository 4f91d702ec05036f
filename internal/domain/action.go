package domain

// ActionKind is the tag carried by a mutation request.
type ActionKind string

const (
	ActionAdd    ActionKind = "add"
	ActionEdit   ActionKind = "edit"
	ActionDelete ActionKind = "delete"
)

// ParseActionKind maps a wire tag onto a known ActionKind.
func ParseActionKind(tag string) (ActionKind, bool) {
	switch ActionKind(tag) {
	case ActionAdd, ActionEdit, ActionDelete:
		return ActionKind(tag), true
	default:
		return "", false
	}
}

// String returns the wire tag.
func (k ActionKind) String() string {
	return string(k)
}

// Action is a validated mutation request. Exactly one of Add, Edit or
// Delete; each variant carries only the fields its action needs.
type Action interface {
	Kind() ActionKind
	isAction()
}

// Add creates a new task.
type Add struct {
	Description string
	Priority    int64
}

// Edit replaces the description and priority of an existing task.
type Edit struct {
	ID          int64
	Description string
	Priority    int64
}

// Delete removes a task.
type Delete struct {
	ID int64
}

func (Add) Kind() ActionKind    { return ActionAdd }
func (Edit) Kind() ActionKind   { return ActionEdit }
func (Delete) Kind() ActionKind { return ActionDelete }

func (Add) isAction()    {}
func (Edit) isAction()   {}
func (Delete) isAction() {}
