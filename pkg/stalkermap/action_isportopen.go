package stalkermap

import "strconv"

// IsPortOpenAction is the canonical built-in action from spec.md §4.B: it
// never reads, and on a successful connect it records the port as open
// along with the target host/port. Connect-failure statuses
// ("closed"/"timeout") are inserted by the scheduler itself before the
// worker ever reaches the action pipeline (spec.md §4.B/§4.G).
type IsPortOpenAction struct{}

// NewIsPortOpenAction returns a ready-to-use IsPortOpenAction.
func NewIsPortOpenAction() *IsPortOpenAction { return &IsPortOpenAction{} }

// Name implements Action.
func (a *IsPortOpenAction) Name() string { return "IsPortOpen" }

// WantsRead implements Action.
func (a *IsPortOpenAction) WantsRead() bool { return false }

// OnConnected implements Action.
func (a *IsPortOpenAction) OnConnected(ctx ActionContext, results ResultMap) {
	results["IsPortOpen"] = "open"
	results["target"] = hostFromAddr(ctx.Addr)
	results["port"] = strconv.Itoa(int(ctx.Port))
}

// OnConnectedWithRead implements Action. IsPortOpen never requests a
// read, so this is never called by the engine; it is a no-op for safety.
func (a *IsPortOpenAction) OnConnectedWithRead(ActionContext, []byte, ResultMap) {}

// hostFromAddr strips the ":port" suffix the engine already appended to
// build ctx.Addr, so the recorded "target" value is the bare host, which
// is what S1's test scenario in spec.md §8 expects ("target" → "127.0.0.1").
func hostFromAddr(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[:i]
		}
	}
	return addr
}
