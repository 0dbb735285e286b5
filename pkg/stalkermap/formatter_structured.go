package stalkermap

import "strings"

// LogRecord is the output type of StructuredFormatter: the task's result
// map plus a lossy-UTF8 rendering of its raw bytes, kept as structured
// Go values instead of being serialized (spec.md §4.C names this as the
// formatter for in-process consumers that want to avoid a round-trip
// through a wire format).
type LogRecord struct {
	Results ResultMap
	Data    string

	// idle marks the sentinel value returned by IdleOutput. ResultMap is
	// a Go map, which has no == operator, so LogRecord cannot satisfy
	// Go's comparable constraint the way spec.md's Eq requirement
	// envisions; this field is the adaptation StructuredFormatter makes
	// instead, and IsIdle checks it directly rather than comparing two
	// LogRecord values for equality.
	idle bool
}

// StructuredFormatter implements Formatter[LogRecord].
type StructuredFormatter struct{}

// NewStructuredFormatter returns a ready-to-use StructuredFormatter.
func NewStructuredFormatter() *StructuredFormatter { return &StructuredFormatter{} }

// Format implements Formatter.
func (f *StructuredFormatter) Format(results ResultMap, raw []byte) LogRecord {
	out := make(ResultMap, len(results))
	for k, v := range results {
		out[k] = v
	}
	return LogRecord{
		Results: out,
		Data:    strings.ToValidUTF8(string(raw), "�"),
	}
}

// IdleOutput implements Formatter.
func (f *StructuredFormatter) IdleOutput() LogRecord {
	return LogRecord{idle: true}
}

// IsIdle implements Formatter.
func (f *StructuredFormatter) IsIdle(o LogRecord) bool { return o.idle }
