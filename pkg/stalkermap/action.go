package stalkermap

// ResultMap is the per-task, string-keyed, string-valued mapping that
// actions contribute to, shared in submitted order across one task's
// action pipeline (spec.md §3).
type ResultMap map[string]string

// ActionContext is the opaque per-worker context passed to every action
// callback: the target address, its port, and a correlation id unique to
// the worker executing this task (spec.md §3).
type ActionContext struct {
	Addr     string
	Port     uint16
	WorkerID string
}

// Action is the polymorphic per-connection hook described in spec.md
// §4.B: a capability set, not a class hierarchy, so built-ins and
// caller-supplied actions compose identically.
type Action interface {
	// Name is the stable, per-task-unique key this action writes under.
	Name() string

	// WantsRead reports whether the scheduler should attempt the task's
	// single non-blocking read before invoking this action. The worker asks
	// each action once, in pipeline order; the first action that returns
	// true triggers the task's one read, and later ones reuse its bytes.
	WantsRead() bool

	// OnConnected is invoked when WantsRead is false.
	OnConnected(ctx ActionContext, results ResultMap)

	// OnConnectedWithRead is invoked when WantsRead is true. raw may be
	// empty if the peer sent nothing, the read would have blocked, or it
	// errored — spec.md §4.B requires all three cases collapse to an
	// empty slice, never a propagated error.
	OnConnectedWithRead(ctx ActionContext, raw []byte, results ResultMap)
}

// Task is an immutable unit of work: an ordered list of actions paired
// with a target. Once popped from the queue it is owned by exactly one
// worker (spec.md §3).
type Task struct {
	Actions []Action
	Target  Target
}

// NewTask validates and constructs a Task. It enforces the two
// per-task invariants actions rely on: at least one action, and unique
// names (since Name() is the result-map key).
func NewTask(actions []Action, target Target) (Task, error) {
	if len(actions) == 0 {
		return Task{}, ErrNoActions
	}
	seen := make(map[string]struct{}, len(actions))
	for _, a := range actions {
		if _, dup := seen[a.Name()]; dup {
			return Task{}, ErrDuplicateActionName
		}
		seen[a.Name()] = struct{}{}
	}
	return Task{Actions: actions, Target: target}, nil
}
