package stalkermap

import "bytes"

// RawOutput is the output type of RawFormatter: the task's raw bytes,
// unmodified (spec.md §3 defines Raw as the byte slice verbatim, so no
// re-encoding happens here — see LogRecord in formatter_structured.go for
// the same idle-marker idiom applied to a non-comparable payload).
type RawOutput struct {
	Data []byte

	// idle marks the sentinel value returned by IdleOutput. []byte has no
	// == operator, so RawOutput cannot satisfy comparable either; IsIdle
	// checks this field directly instead of comparing Data.
	idle bool
}

// RawFormatter implements Formatter[RawOutput] by passing the task's raw
// bytes straight through, ignoring the result map entirely — the simplest
// of the three built-in formatters named in spec.md §4.C.
type RawFormatter struct{}

// NewRawFormatter returns a ready-to-use RawFormatter.
func NewRawFormatter() *RawFormatter { return &RawFormatter{} }

// Format implements Formatter.
func (f *RawFormatter) Format(_ ResultMap, raw []byte) RawOutput {
	return RawOutput{Data: raw}
}

// IdleOutput implements Formatter.
func (f *RawFormatter) IdleOutput() RawOutput { return RawOutput{idle: true} }

// IsIdle implements Formatter.
func (f *RawFormatter) IsIdle(o RawOutput) bool { return o.idle }

// Equal reports whether two RawOutput values carry the same bytes and
// idle state. Exposed for callers and tests that need value comparison
// now that RawOutput is no longer comparable with ==.
func (o RawOutput) Equal(other RawOutput) bool {
	return o.idle == other.idle && bytes.Equal(o.Data, other.Data)
}
