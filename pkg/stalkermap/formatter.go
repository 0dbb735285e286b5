package stalkermap

// Formatter is the strategy object described in spec.md §4.C. O is the
// formatter's associated output type; the engine is generic over it, and
// subscribers only ever see values of type O.
//
// The original contract requires O to support equality (spec.md §3/§8
// property 3: IsIdle(o) iff o == IdleOutput()). Go's built-in comparable
// constraint cannot express that for a type carrying a map (ResultMap),
// which StructuredFormatter's output does — so IsIdle is a method each
// formatter implements explicitly rather than a generic `==`. JSONFormatter
// still implements it as plain string equality; RawFormatter and
// StructuredFormatter instead carry a dedicated idle marker field and
// compare against that, which is the adaptation this module makes of
// spec.md's equality requirement to Go's type system.
type Formatter[O any] interface {
	// Format converts one task's result map and raw bytes into the
	// formatter's output type.
	Format(results ResultMap, raw []byte) O

	// IdleOutput is the sentinel value broadcast when the engine reaches
	// a quiescent state (pending == 0 && active == 0).
	IdleOutput() O

	// IsIdle reports whether o is the idle sentinel.
	IsIdle(o O) bool
}
