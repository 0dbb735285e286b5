package stalkermap

import "errors"

// Sentinel errors follow the teacher's "modulename: message" convention
// (firestige-Otus internal/core), usable with errors.Is. None of these are
// ever surfaced for per-task outcomes — those are always in-band log
// records (spec.md §7); these only cover caller-contract violations.
var (
	// ErrNoActions is returned by NewTask when actions is empty: spec.md
	// §3 requires at least one action per task.
	ErrNoActions = errors.New("stalkermap: task must have at least one action")

	// ErrDuplicateActionName is returned when two actions registered on
	// the same task share a name — spec.md §3 requires action names be
	// unique per task since the name is the result-map key.
	ErrDuplicateActionName = errors.New("stalkermap: duplicate action name in task")
)
